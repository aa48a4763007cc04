package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"ufobeep/config"
	deliverycontext "ufobeep/internal/delivery/context"
	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/lifecycle"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	statusWriteTimeout = 5 * time.Second
	maxLastErrorLength = 500
)

// errDispatcherStopped is recorded on jobs that were still queued at shutdown.
var errDispatcherStopped = errors.New("dispatcher stopped before delivery")

// DispatchJob is one pending push for a stored dispatch record.
type DispatchJob struct {
	Record    *entity.AlertDispatchRecord
	PushToken string
	Payload   entity.AlertPayload
}

// Dispatcher delivers alerts in the background. A fixed set of workers shared by
// every fanout pulls jobs from one queue, so in-flight gateway calls and
// goroutines are both bounded by fanout.maxInFlight. Each attempt gets its own
// timeout derived from the dispatcher's lifetime, never from the request that
// queued it.
type Dispatcher struct {
	gateway    service.NotificationGateway
	alertRepo  repository.AlertRepository
	deviceRepo repository.DeviceLocationRepository
	index      service.DeviceIndex

	sendTimeout  time.Duration
	retryBackoff time.Duration
	maxRetries   int

	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	ready    *sync.Cond
	queue    []*dispatchTask
	retrying map[*dispatchTask]*time.Timer
	stopped  bool
	pending  sync.WaitGroup
	workers  errgroup.Group

	logger *slog.Logger
}

// dispatchTask tracks one job across its attempts.
type dispatchTask struct {
	job      DispatchJob
	logger   *slog.Logger
	attempts int
	backoff  time.Duration
	lastErr  error
}

// DispatcherParams holds dependencies for Dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Lifecycle  fx.Lifecycle `optional:"true"`
	Gateway    service.NotificationGateway
	AlertRepo  repository.AlertRepository
	DeviceRepo repository.DeviceLocationRepository
	Index      service.DeviceIndex
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDispatcher creates the shared dispatcher, starts its workers and drains it on shutdown.
func NewDispatcher(params DispatcherParams) *Dispatcher {
	cfg := params.Config.Fanout
	ctx, cancel := context.WithCancel(context.Background())

	workerCount := int(cfg.MaxInFlight)
	if workerCount <= 0 {
		workerCount = 1
	}

	d := &Dispatcher{
		gateway:      params.Gateway,
		alertRepo:    params.AlertRepo,
		deviceRepo:   params.DeviceRepo,
		index:        params.Index,
		sendTimeout:  cfg.SendTimeout,
		retryBackoff: cfg.RetryBackoff,
		maxRetries:   max(cfg.MaxRetries, 0),
		ctx:          ctx,
		cancel:       cancel,
		retrying:     make(map[*dispatchTask]*time.Timer),
		logger:       params.Logger,
	}
	d.ready = sync.NewCond(&d.mu)
	d.spawnWorkers(workerCount)

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(stopCtx context.Context) error {
				stopCtx, cancelStop := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
				defer cancelStop()

				return d.Stop(stopCtx)
			},
		})
	}

	return d
}

func (d *Dispatcher) spawnWorkers(count int) {
	for range count {
		d.workers.Go(func() error {
			for {
				task, ok := d.next()
				if !ok {
					return nil
				}
				d.attempt(task)
			}
		})
	}
}

// next blocks until a task is queued. It reports false once the dispatcher is
// stopped and the queue is drained.
func (d *Dispatcher) next() (*dispatchTask, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for len(d.queue) == 0 && !d.stopped {
		d.ready.Wait()
	}
	if len(d.queue) == 0 {
		return nil, false
	}

	task := d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]

	return task, true
}

// Submit queues the jobs and returns immediately. Jobs submitted after Stop
// are marked failed.
func (d *Dispatcher) Submit(ctx context.Context, jobs []DispatchJob) {
	if len(jobs) == 0 {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		for _, job := range jobs {
			d.finish(logger, job, entity.DeliveryStatusFailed, 0, errDispatcherStopped)
		}

		return
	}
	d.pending.Add(len(jobs))
	for _, job := range jobs {
		d.queue = append(d.queue, &dispatchTask{job: job, logger: logger, backoff: d.retryBackoff})
	}
	d.ready.Broadcast()
	d.mu.Unlock()
}

// Wait blocks until every submitted job reached a terminal state.
func (d *Dispatcher) Wait() {
	d.pending.Wait()
}

// Stop cancels outstanding attempts and scheduled retries, then waits for
// their terminal writes.
func (d *Dispatcher) Stop(ctx context.Context) error {
	var cancelled []*dispatchTask

	d.mu.Lock()
	d.stopped = true
	for task, timer := range d.retrying {
		if timer.Stop() {
			cancelled = append(cancelled, task)
		}
		delete(d.retrying, task)
	}
	d.ready.Broadcast()
	d.mu.Unlock()
	d.cancel()

	for _, task := range cancelled {
		d.fail(task)
	}

	done := make(chan struct{})
	go func() {
		d.pending.Wait()
		_ = d.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("[Dispatcher] Drained")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "dispatcher drain timed out")
	}
}

func (d *Dispatcher) attempt(task *dispatchTask) {
	if d.ctx.Err() != nil {
		d.fail(task)

		return
	}

	task.attempts++
	err := d.send(task.job)

	switch {
	case err == nil:
		d.complete(task, entity.DeliveryStatusDelivered, nil)
	case errors.Is(err, service.ErrPermanentDelivery):
		d.dropDevice(task.logger, task.job.Record.DeviceID, err)
		d.complete(task, entity.DeliveryStatusFailed, err)
	case task.attempts > d.maxRetries || d.ctx.Err() != nil:
		d.complete(task, entity.DeliveryStatusFailed, err)
	default:
		task.logger.Debug("[Dispatcher] Send attempt failed",
			slog.String("device_id", task.job.Record.DeviceID),
			slog.Int("attempt", task.attempts),
			slog.Any("error", err),
		)
		task.lastErr = err
		d.retryLater(task)
	}
}

// retryLater puts the task back on the queue after its backoff, doubling the
// backoff for the next round. No worker is held while waiting.
func (d *Dispatcher) retryLater(task *dispatchTask) {
	wait := task.backoff
	task.backoff *= 2

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		d.fail(task)

		return
	}
	if wait <= 0 {
		d.queue = append(d.queue, task)
		d.ready.Signal()
	} else {
		d.retrying[task] = time.AfterFunc(wait, func() { d.requeue(task) })
	}
	d.mu.Unlock()
}

func (d *Dispatcher) requeue(task *dispatchTask) {
	d.mu.Lock()
	delete(d.retrying, task)
	if d.stopped {
		d.mu.Unlock()
		d.fail(task)

		return
	}
	d.queue = append(d.queue, task)
	d.ready.Signal()
	d.mu.Unlock()
}

// fail ends a task that was cut short by shutdown, keeping the error of its
// last attempt when there was one.
func (d *Dispatcher) fail(task *dispatchTask) {
	cause := task.lastErr
	if cause == nil {
		cause = errDispatcherStopped
	}
	d.complete(task, entity.DeliveryStatusFailed, cause)
}

func (d *Dispatcher) complete(task *dispatchTask, status entity.DeliveryStatus, sendErr error) {
	defer d.pending.Done()

	d.finish(task.logger, task.job, status, task.attempts, sendErr)
}

func (d *Dispatcher) send(job DispatchJob) error {
	ctx, cancel := context.WithTimeout(d.ctx, d.sendTimeout)
	defer cancel()

	return d.gateway.Send(ctx, job.PushToken, job.Payload)
}

// finish writes the terminal status and bumps the fanout counters. Writes
// outlive shutdown cancellation so no record is left pending.
func (d *Dispatcher) finish(logger *slog.Logger, job DispatchJob, status entity.DeliveryStatus, attempts int, sendErr error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(d.ctx), statusWriteTimeout)
	defer cancel()

	record := job.Record
	lastError := ""
	if sendErr != nil {
		lastError = truncate(sendErr.Error(), maxLastErrorLength)
	}

	if err := d.alertRepo.UpdateDispatchStatus(ctx, record.ID, status, attempts, lastError); err != nil {
		logger.Error("[Dispatcher] Failed to record delivery status",
			slog.String("record_id", record.ID.String()),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}

	delivered, failed := 0, 1
	if status == entity.DeliveryStatusDelivered {
		delivered, failed = 1, 0
	}
	if err := d.alertRepo.IncrementFanoutOutcome(ctx, record.FanoutID, delivered, failed); err != nil {
		logger.Error("[Dispatcher] Failed to update fanout counters",
			slog.String("fanout_id", record.FanoutID.String()),
			slog.Any("error", err),
		)
	}

	if status == entity.DeliveryStatusFailed {
		logger.Warn("[Dispatcher] Alert delivery failed",
			slog.String("sighting_id", record.SightingID.String()),
			slog.String("device_id", record.DeviceID),
			slog.Int("attempts", attempts),
			slog.String("last_error", lastError),
		)
	}
}

// dropDevice forgets a device whose token the gateway rejected for good.
func (d *Dispatcher) dropDevice(logger *slog.Logger, deviceID string, cause error) {
	d.index.Remove(deviceID)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(d.ctx), statusWriteTimeout)
	defer cancel()

	if err := d.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		logger.Error("[Dispatcher] Failed to deactivate device with invalid token",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("[Dispatcher] Removed device with invalid push token",
		slog.String("device_id", deviceID),
		slog.Any("cause", cause),
	)
}

// truncate shortens s to at most limit bytes of valid UTF-8, cutting on a rune boundary.
func truncate(s string, limit int) string {
	s = strings.ToValidUTF8(s, "")
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
