// internal/leaderboard/recorder.go
package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"zombie-shooter/internal/interfaces"
)

var (
	ErrClosed       = errors.New("leaderboard: recorder closed")
	ErrBackpressure = errors.New("leaderboard: write queue full")
)

// scoreStore — то, что Recorder требует от хранилища.
type scoreStore interface {
	Save(ctx context.Context, score interfaces.FinalScore) error
	Top(ctx context.Context, limit int) ([]interfaces.FinalScore, error)
}

type job struct {
	score *interfaces.FinalScore
	done  chan struct{} // закрывается, когда всё, что было в очереди до job, записано
}

// Recorder пишет результаты в фоне, чтобы кадр игры не ждал диска.
// Ошибки записи только логируются.
type Recorder struct {
	store scoreStore
	queue chan job
	eg    *errgroup.Group
	ctx   context.Context

	mu     sync.RWMutex
	closed bool
}

func NewRecorder(ctx context.Context, store scoreStore, buffer int) *Recorder {
	eg, ctx := errgroup.WithContext(ctx)
	r := &Recorder{
		store: store,
		queue: make(chan job, buffer),
		eg:    eg,
		ctx:   ctx,
	}
	eg.Go(func() error {
		r.writeLoop(ctx)
		return nil
	})
	return r
}

// Record ставит результат в очередь и сразу возвращается.
func (r *Recorder) Record(ctx context.Context, score interfaces.FinalScore) error {
	return r.enqueue(ctx, job{score: &score}, false)
}

// Flush ждёт, пока будут записаны все результаты, поставленные до вызова.
func (r *Recorder) Flush(ctx context.Context) error {
	done := make(chan struct{})
	if err := r.enqueue(ctx, job{done: done}, true); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Top читает лучшие результаты напрямую из хранилища.
func (r *Recorder) Top(ctx context.Context, limit int) ([]interfaces.FinalScore, error) {
	return r.store.Top(ctx, limit)
}

// Close дописывает очередь и останавливает фоновую запись.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()
	return r.eg.Wait()
}

func (r *Recorder) enqueue(ctx context.Context, j job, wait bool) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrClosed
	}
	if !wait {
		select {
		case r.queue <- j:
			return nil
		default:
			return ErrBackpressure
		}
	}
	select {
	case r.queue <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-r.ctx.Done():
		return ErrClosed
	}
}

func (r *Recorder) writeLoop(ctx context.Context) {
	for j := range r.queue {
		if j.score != nil {
			if err := r.store.Save(ctx, *j.score); err != nil {
				slog.Error("failed to save score", "run_id", j.score.RunID, "error", err)
			} else {
				slog.Debug("score saved", "run_id", j.score.RunID, "score", j.score.Score)
			}
		}
		if j.done != nil {
			close(j.done)
		}
	}
}

var _ interfaces.ScoreBoard = (*Recorder)(nil)
