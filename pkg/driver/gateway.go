package driver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

// RunnerWebhookPath is where runners report progress back.
const RunnerWebhookPath = "/webhooks/runner"

// Status reasons for executions finalized as error by the gateway.
// ReasonUnavailable covers a retry budget exhausted on retryable failures;
// ReasonStartFailed covers everything the runner rejected outright.
const (
	ReasonUnavailable = "driver_unavailable"
	ReasonStartFailed = "driver_start_failed"
)

// Finalizer is the slice of the Store the gateway needs to give up on an
// execution.
type Finalizer interface {
	FinalizeExecution(ctx context.Context, execID string, status execution.Status, aggregated *models.AggregatedResults, reason string) (*store.ApplyResult, error)
}

// Slots releases advisory runner capacity after a failed dispatch.
type Slots interface {
	DecInflight(id int)
}

// Announcer publishes the terminal event for a failed dispatch.
type Announcer interface {
	ExecutionCompleted(ctx context.Context, exec *ent.Execution, reason string)
}

// Notifier delivers the client webhook for a failed dispatch.
type Notifier interface {
	NotifyCompletion(exec *ent.Execution)
}

// Gateway fans committed assignments out to runner drivers. Dispatch is
// asynchronous: the scheduler's pass never waits on a runner's network.
// Exhausting the start retry budget finalizes the execution as error and
// releases the runner slot, so capacity cannot leak on a dead runner.
type Gateway struct {
	cfg       *config.DriverConfig
	drivers   map[string]Driver
	store     Finalizer
	slots     Slots
	announcer Announcer
	notifier  Notifier
	logger    *slog.Logger

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewGateway wires the gateway. Later drivers with the same type override
// earlier ones.
func NewGateway(cfg *config.DriverConfig, st Finalizer, slots Slots, announcer Announcer, notifier Notifier, drivers ...Driver) *Gateway {
	byType := make(map[string]Driver, len(drivers))
	for _, d := range drivers {
		byType[d.Type()] = d
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Gateway{
		cfg:       cfg,
		drivers:   byType,
		store:     st,
		slots:     slots,
		announcer: announcer,
		notifier:  notifier,
		logger:    slog.With("component", "driver_gateway"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (g *Gateway) request(exec *ent.Execution, rnr *ent.Runner) Request {
	return Request{
		Execution:   exec,
		Runner:      rnr,
		CallbackURL: g.cfg.CallbackBaseURL + RunnerWebhookPath,
		Token:       rnr.WebhookToken,
	}
}

// Dispatch asynchronously tells the runner to start the execution. The
// assignment is already committed; failure here travels through the normal
// terminal path (finalize, slot release, event, client webhook).
func (g *Gateway) Dispatch(exec *ent.Execution, rnr *ent.Runner) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.dispatch(exec, rnr)
	}()
}

func (g *Gateway) dispatch(exec *ent.Execution, rnr *ent.Runner) {
	logger := g.logger.With("execution_id", exec.ID, "runner_id", rnr.ID, "runner_type", rnr.Type)

	drv, ok := g.drivers[rnr.Type]
	if !ok {
		logger.Error("no driver for runner type")
		g.fail(exec, rnr, fmt.Errorf("no driver for runner type %q", rnr.Type))
		return
	}

	budget, cancel := context.WithTimeout(g.ctx, g.cfg.StartMaxElapsed)
	defer cancel()

	req := g.request(exec, rnr)
	err := retry.Do(
		func() error {
			if err := budget.Err(); err != nil {
				return &Error{Kind: KindTransient, Msg: "start budget exhausted", Err: err}
			}
			return drv.Start(budget, req)
		},
		retry.Attempts(uint(g.cfg.StartRetries)),
		retry.Delay(g.cfg.StartBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(func(err error) bool {
			return Retryable(err) && budget.Err() == nil
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		logger.Error("start dispatch failed, finalizing execution", "error", err)
		g.fail(exec, rnr, err)
		return
	}
	logger.Info("execution dispatched to runner")
}

// fail finalizes the execution as error after dispatch gave up. A Stale or
// Duplicate outcome means the execution reached a terminal state through
// another path first (cancel, runner webhook); nothing more to do then.
func (g *Gateway) fail(exec *ent.Execution, rnr *ent.Runner, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reason := ReasonStartFailed
	if Retryable(cause) {
		reason = ReasonUnavailable
	}

	res, err := g.store.FinalizeExecution(ctx, exec.ID, execution.StatusError, nil, reason)
	if err != nil {
		g.logger.Error("failed to finalize after dispatch failure",
			"execution_id", exec.ID, "error", err, "cause", cause)
		return
	}
	if res.Outcome != store.OutcomeApplied {
		return
	}

	g.slots.DecInflight(rnr.ID)
	g.announcer.ExecutionCompleted(ctx, res.Execution, reason)
	if g.notifier != nil {
		g.notifier.NotifyCompletion(res.Execution)
	}
}

// Cancel asynchronously tells the runner to stop an already-terminal
// execution. Best-effort: a runner that misses it will have its late
// webhooks answered with 409.
func (g *Gateway) Cancel(exec *ent.Execution, rnr *ent.Runner) {
	drv, ok := g.drivers[rnr.Type]
	if !ok {
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		ctx, cancel := context.WithTimeout(g.ctx, 10*time.Second)
		defer cancel()

		if err := drv.Cancel(ctx, g.request(exec, rnr)); err != nil {
			g.logger.Warn("cancel delivery failed",
				"execution_id", exec.ID, "runner_id", rnr.ID, "error", err)
		}
	}()
}

// Stop waits for in-flight dispatches up to the context deadline, then cuts
// them off.
func (g *Gateway) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		g.cancel()
		return nil
	case <-ctx.Done():
		g.cancel()
		return fmt.Errorf("driver gateway shutdown timed out: %w", ctx.Err())
	}
}
