// Package devicefeed keeps the geo index in step with device_locations rows
// changed outside this process. A trigger on the table calls pg_notify with
// the changed device id; the listener re-reads that device and syncs it.
package devicefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ufobeep/config"
	"ufobeep/internal/delivery"
	"ufobeep/internal/domain/lifecycle"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/fx"
)

const (
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
	syncTimeout      = 5 * time.Second
)

// ChangeEvent is the pg_notify payload. A bare device id is accepted too.
type ChangeEvent struct {
	DeviceID string `json:"device_id"`
	Op       string `json:"op,omitempty"`
}

type notificationConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

type connectFunc func(ctx context.Context, dsn string) (notificationConn, error)

func pgxConnect(ctx context.Context, dsn string) (notificationConn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

type listener struct {
	enabled bool
	dsn     string
	channel string
	devices usecase.DeviceLocationUsecase
	logger  *slog.Logger

	connect    connectFunc
	backoff    time.Duration
	maxBackoff time.Duration

	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// ListenerParams holds dependencies for the device feed
type ListenerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Devices usecase.DeviceLocationUsecase
	Logger  *slog.Logger
}

// NewListener creates the LISTEN/NOTIFY consumer. It is a no-op unless deviceFeed.enabled is set.
func NewListener(params ListenerParams) (delivery.Delivery, error) {
	l := newListener(params.Config.DeviceFeed, params.Devices, params.Logger, pgxConnect)
	if l.enabled && l.dsn == "" {
		return nil, errors.New("device feed dsn is required when the feed is enabled")
	}

	params.Lc.Append(fx.Hook{
		OnStop: l.stop,
	})

	return l, nil
}

func newListener(cfg *config.DeviceFeedConfig, devices usecase.DeviceLocationUsecase, logger *slog.Logger, connect connectFunc) *listener {
	ctx, cancel := context.WithCancel(context.Background())
	l := &listener{
		devices:    devices,
		logger:     logger,
		connect:    connect,
		backoff:    reconnectBackoff,
		maxBackoff: maxReconnect,
		ctx:        ctx,
		cancel:     cancel,
	}
	if cfg != nil {
		l.enabled = cfg.Enabled
		l.dsn = cfg.DSN
		l.channel = cfg.Channel
	}

	return l
}

// Serve listens until the listener is stopped, reconnecting with capped backoff.
func (l *listener) Serve(ctx context.Context) error {
	if !l.enabled {
		l.logger.Info("[DeviceFeed] Disabled")

		return nil
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()

		return nil
	}
	l.wg.Add(1)
	l.mu.Unlock()
	defer l.wg.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(l.ctx, cancel)
	defer stop()

	backoff := l.backoff
	for {
		err := l.listenLoop(ctx, func() { backoff = l.backoff })
		if ctx.Err() != nil {
			l.logger.Info("[DeviceFeed] Stopped")

			return nil
		}

		l.logger.Error("[DeviceFeed] Disconnected, reconnecting",
			slog.Any("error", err),
			slog.Duration("backoff", backoff),
		)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, l.maxBackoff)
		case <-ctx.Done():
			return nil
		}
	}
}

// listenLoop runs one session; onConnected resets the backoff once LISTEN succeeds.
func (l *listener) listenLoop(ctx context.Context, onConnected func()) error {
	conn, err := l.connect(ctx, l.dsn)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return errors.Wrapf(err, "LISTEN %s", l.channel)
	}
	onConnected()
	l.logger.Info("[DeviceFeed] Listening", slog.String("channel", l.channel))

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return errors.Wrap(err, "wait for notification")
		}

		deviceID := parseDeviceID(notification.Payload)
		if deviceID == "" {
			l.logger.Warn("[DeviceFeed] Ignoring malformed payload", slog.String("payload", notification.Payload))

			continue
		}

		l.sync(ctx, deviceID)
	}
}

// sync runs inline so notifications for one device apply in order.
func (l *listener) sync(ctx context.Context, deviceID string) {
	syncCtx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	if err := l.devices.SyncDevice(syncCtx, deviceID); err != nil {
		l.logger.Warn("[DeviceFeed] Failed to sync device",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)

		return
	}

	l.logger.Debug("[DeviceFeed] Device synced", slog.String("device_id", deviceID))
}

func parseDeviceID(payload string) string {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return ""
	}
	if !strings.HasPrefix(payload, "{") {
		return payload
	}

	var event ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return ""
	}

	return strings.TrimSpace(event.DeviceID)
}

func (l *listener) stop(ctx context.Context) error {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
	l.cancel()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done:
		return nil
	case <-stopCtx.Done():
		return errors.WithStack(stopCtx.Err())
	}
}
