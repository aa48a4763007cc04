package devicefeed

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ufobeep/config"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	notifications chan *pgconn.Notification
	listened      atomic.Value
}

func newFakeConn() *fakeConn {
	return &fakeConn{notifications: make(chan *pgconn.Notification, 8)}
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.listened.Store(sql)

	return pgconn.NewCommandTag("LISTEN"), nil
}

func (c *fakeConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	select {
	case n, ok := <-c.notifications:
		if !ok {
			return nil, errors.New("conn closed")
		}

		return n, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *fakeConn) Close(context.Context) error { return nil }

type syncRecorder struct {
	usecase.DeviceLocationUsecase

	mu     sync.Mutex
	synced []string
}

func (r *syncRecorder) SyncDevice(_ context.Context, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.synced = append(r.synced, deviceID)

	return nil
}

func (r *syncRecorder) ids() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.synced...)
}

func newTestListener(connect connectFunc, devices usecase.DeviceLocationUsecase) *listener {
	cfg := &config.DeviceFeedConfig{Enabled: true, DSN: "postgres://localhost/ufobeep", Channel: "device_location_changed"}
	l := newListener(cfg, devices, slog.New(slog.NewTextHandler(io.Discard, nil)), connect)
	l.backoff = time.Millisecond
	l.maxBackoff = 4 * time.Millisecond

	return l
}

func TestListener_SyncsNotifiedDevices(t *testing.T) {
	conn := newFakeConn()
	devices := &syncRecorder{}
	l := newTestListener(func(context.Context, string) (notificationConn, error) { return conn, nil }, devices)

	done := make(chan error, 1)
	go func() { done <- l.Serve(context.Background()) }()

	conn.notifications <- &pgconn.Notification{Payload: `{"device_id":"d1","op":"update"}`}
	conn.notifications <- &pgconn.Notification{Payload: "{broken"}
	conn.notifications <- &pgconn.Notification{Payload: "d2"}

	assert.Eventually(t, func() bool { return len(devices.ids()) == 2 }, time.Second, time.Millisecond)
	require.NoError(t, l.stop(context.Background()))
	require.NoError(t, <-done)

	assert.Equal(t, []string{"d1", "d2"}, devices.ids())
	assert.Equal(t, `LISTEN "device_location_changed"`, conn.listened.Load())
}

func TestListener_ReconnectsAfterFailures(t *testing.T) {
	var attempts atomic.Int32
	conn := newFakeConn()
	devices := &syncRecorder{}
	l := newTestListener(func(context.Context, string) (notificationConn, error) {
		if attempts.Add(1) < 3 {
			return nil, errors.New("connection refused")
		}

		return conn, nil
	}, devices)

	done := make(chan error, 1)
	go func() { done <- l.Serve(context.Background()) }()

	conn.notifications <- &pgconn.Notification{Payload: `{"device_id":"d1"}`}

	assert.Eventually(t, func() bool { return len(devices.ids()) == 1 }, time.Second, time.Millisecond)
	require.NoError(t, l.stop(context.Background()))
	require.NoError(t, <-done)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestListener_Disabled(t *testing.T) {
	l := newListener(&config.DeviceFeedConfig{}, &syncRecorder{}, slog.New(slog.NewTextHandler(io.Discard, nil)), func(context.Context, string) (notificationConn, error) {
		t.Fatal("disabled listener must not connect")

		return nil, nil
	})

	require.NoError(t, l.Serve(context.Background()))
	require.NoError(t, l.stop(context.Background()))
}

func TestParseDeviceID(t *testing.T) {
	tests := []struct {
		payload string
		want    string
	}{
		{payload: `{"device_id":" d1 ","op":"delete"}`, want: "d1"},
		{payload: "  d2  ", want: "d2"},
		{payload: `{"op":"update"}`, want: ""},
		{payload: `{bad`, want: ""},
		{payload: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDeviceID(tt.payload))
		})
	}
}
