package cron

import (
	"context"
	"log"
	"time"
)

// Reconciler re-runs task completion for tasks that missed a transition.
type Reconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// StartReconcileTask sweeps in-progress tasks once at startup and then every
// interval until ctx is cancelled. A non-positive interval disables the sweep.
// The returned channel is closed when the goroutine exits.
func StartReconcileTask(ctx context.Context, r Reconciler, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if interval <= 0 {
		log.Println("Task reconciliation disabled")
		close(done)
		return done
	}

	go func() {
		defer close(done)
		log.Printf("Starting background task reconciliation (every %s)", interval)

		runReconcile(ctx, r)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("Task reconciliation stopped")
				return
			case <-ticker.C:
				runReconcile(ctx, r)
			}
		}
	}()
	return done
}

func runReconcile(ctx context.Context, r Reconciler) {
	completed, err := r.ReconcileAll(ctx)
	if err != nil {
		log.Printf("Failed to reconcile tasks: %v", err)
		return
	}
	if completed > 0 {
		log.Printf("Reconciliation completed %d task(s)", completed)
	}
}
