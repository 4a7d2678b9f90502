// internal/pipeline/run.go
package pipeline

import (
	"sync"
	"time"

	apperrors "magnet-factory/internal/common/errors"
	"magnet-factory/internal/models"

	"github.com/google/uuid"
)

// Request is the input of one pipeline run. Fields a route does not use
// are ignored.
type Request struct {
	Route     models.Route      `json:"route"`
	Format    models.FormatType `json:"format,omitempty"`
	Topic     string            `json:"topic,omitempty"`
	PainPoint string            `json:"pain_point,omitempty"`
	Industry  string            `json:"industry,omitempty"`
}

const (
	DefaultPainPoint = "No tengo estrategia de marketing"
	DefaultIndustry  = "marketing"
	DefaultTopic     = "Estado del Marketing"
)

// Snapshot is a point-in-time copy of a run, safe to serialize.
type Snapshot struct {
	ID          string                   `json:"run_id"`
	Route       models.Route             `json:"route"`
	State       State                    `json:"state"`
	Request     Request                  `json:"request"`
	Result      *models.ProductionResult `json:"result,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Code        apperrors.ErrorCode      `json:"code,omitempty"`
	StartedAt   time.Time                `json:"started_at"`
	CompletedAt *time.Time               `json:"completed_at,omitempty"`
}

// Run is the handle of one pipeline execution. The orchestrator mutates it
// while the API reads snapshots concurrently.
type Run struct {
	mu   sync.RWMutex
	snap Snapshot
	err  error
	done chan struct{}
}

func newRun(req Request) *Run {
	return &Run{
		snap: Snapshot{
			ID:        uuid.New().String(),
			Route:     req.Route,
			State:     StateIdle,
			Request:   req,
			StartedAt: time.Now().UTC(),
		},
		done: make(chan struct{}),
	}
}

func (r *Run) ID() string {
	return r.snap.ID
}

func (r *Run) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap.State
}

func (r *Run) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

// Err returns the abort error of a failed run.
func (r *Run) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Done is closed once the run reaches a terminal state.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

func (r *Run) transition(to State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := checkTransition(r.snap.State, to); err != nil {
		return err
	}
	r.snap.State = to
	return nil
}

func (r *Run) finish(result *models.ProductionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := checkTransition(r.snap.State, StateDone); err != nil {
		return err
	}
	now := time.Now().UTC()
	r.snap.State = StateDone
	r.snap.Result = result
	r.snap.CompletedAt = &now
	close(r.done)
	return nil
}

func (r *Run) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap.State.Terminal() {
		return
	}
	now := time.Now().UTC()
	r.snap.State = StateFailed
	r.snap.Error = apperrors.AsStandardError(err).Message
	r.snap.Code = apperrors.CodeOf(err)
	r.snap.CompletedAt = &now
	r.err = err
	close(r.done)
}
