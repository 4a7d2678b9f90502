// internal/pipeline/orchestrator.go
package pipeline

import (
	"context"
	"sync"
	"time"

	"magnet-factory/internal/common/config"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/common/metrics"
	"magnet-factory/internal/common/observability"
	"magnet-factory/internal/models"
	productarchitect "magnet-factory/internal/workers/content/product-architect"
	runnotifier "magnet-factory/internal/workers/notification/run-notifier"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Config struct {
	RunTimeout time.Duration
}

func LoadConfig(cfg config.PipelineConfig) *Config {
	return &Config{RunTimeout: config.GetDuration(cfg.RunTimeout)}
}

// Orchestrator sequences research, content, visual and distribution for
// one route.
type Orchestrator struct {
	config *Config
	stages Stages
	store  *Store
	obs    *observability.Observability
	logger logger.Logger
	wg     sync.WaitGroup
}

func New(cfg *Config, stages Stages, store *Store, obs *observability.Observability, log logger.Logger) *Orchestrator {
	if obs == nil {
		obs = observability.NewNoop()
	}
	return &Orchestrator{
		config: cfg,
		stages: stages,
		store:  store,
		obs:    obs,
		logger: log.With(map[string]interface{}{"component": "pipeline"}),
	}
}

func (o *Orchestrator) Store() *Store {
	return o.store
}

// Run executes req synchronously. The returned error is the abort reason;
// the run itself is returned whenever one was created. Cancelling ctx does
// not stop the run; only the run timeout bounds it.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Run, error) {
	fn, err := o.prepare(req)
	if err != nil {
		return nil, err
	}
	run := newRun(req)
	o.store.Add(run)

	ctx, cancel := o.runContext(context.WithoutCancel(ctx))
	defer cancel()
	return run, o.execute(ctx, run, fn)
}

// Start executes req in the background, bounded by the configured run
// timeout.
func (o *Orchestrator) Start(req Request) (*Run, error) {
	fn, err := o.prepare(req)
	if err != nil {
		return nil, err
	}
	run := newRun(req)
	o.store.Add(run)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ctx, cancel := o.runContext(context.Background())
		defer cancel()
		_ = o.execute(ctx, run, fn)
	}()
	return run, nil
}

func (o *Orchestrator) runContext(parent context.Context) (context.Context, context.CancelFunc) {
	if o.config.RunTimeout > 0 {
		return context.WithTimeout(parent, o.config.RunTimeout)
	}
	return context.WithCancel(parent)
}

// Wait blocks until background runs finish or ctx is done.
func (o *Orchestrator) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// prepare rejects unknown routes and formats before any stage runs.
func (o *Orchestrator) prepare(req Request) (routeFunc, error) {
	fn, err := o.routeFor(req.Route)
	if err != nil {
		return nil, err
	}
	if req.Route != models.RouteDataAuthority && req.Format != "" && !req.Format.Valid() {
		return nil, &productarchitect.UnknownFormatError{Format: string(req.Format), Available: models.FormatNames()}
	}
	return fn, nil
}

func (o *Orchestrator) execute(ctx context.Context, run *Run, fn routeFunc) error {
	route := string(run.snap.Route)
	log := logger.ForRun(o.logger, run.ID(), route)

	ctx, span := o.obs.StartSpan(ctx, "pipeline.run",
		attribute.String("run.id", run.ID()),
		attribute.String("run.route", route),
	)
	defer span.End()

	metrics.RunsActive.WithLabelValues(route).Inc()
	defer metrics.RunsActive.WithLabelValues(route).Dec()

	log.Info("run started", map[string]interface{}{"request": run.snap.Request})
	start := time.Now()

	result, err := fn(ctx, run, run.snap.Request, log)
	if err == nil {
		err = run.finish(result)
	}

	status := string(StateDone)
	if err != nil {
		status = string(StateFailed)
		run.fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("run aborted", map[string]interface{}{
			"state": run.State(),
			"error": err.Error(),
		})
	} else {
		log.Info("run completed", map[string]interface{}{
			"duration": time.Since(start).String(),
		})
	}

	metrics.RunsTotal.WithLabelValues(route, status).Inc()
	o.obs.RecordRun(ctx, route, status, time.Since(start))

	o.notify(ctx, run)
	return err
}

// stage moves run into state and times fn. Errors returned by fn mark the
// span; whether they abort is up to the caller.
func (o *Orchestrator) stage(ctx context.Context, run *Run, state State, fn func(ctx context.Context) error) error {
	if err := run.transition(state); err != nil {
		return err
	}

	ctx, span := o.obs.StartSpan(ctx, "pipeline.stage."+string(state),
		attribute.String("run.id", run.ID()),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	metrics.StageDuration.WithLabelValues(string(state)).Observe(elapsed.Seconds())
	o.obs.RecordStage(ctx, string(state), elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Warn("stage degraded", map[string]interface{}{
			"runId": run.ID(),
			"stage": string(state),
			"error": err.Error(),
		})
	}
	return err
}

func (o *Orchestrator) notify(ctx context.Context, run *Run) {
	if o.stages.Notifier == nil {
		return
	}
	snap := run.Snapshot()
	input := &runnotifier.Input{
		RunID: snap.ID,
		Route: string(snap.Route),
		State: string(snap.State),
		Error: snap.Error,
	}
	if snap.CompletedAt != nil {
		input.CompletedAt = *snap.CompletedAt
	}
	if snap.Result != nil {
		input.Title = snap.Result.Title
	}
	// The run context may already be past its deadline.
	o.stages.Notifier.Notify(context.WithoutCancel(ctx), input)
}
