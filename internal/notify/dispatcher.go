package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

// Dispatcher delivers notifications in the background. Failures and panics
// are logged and never reach the caller.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewDispatcher(notifier Notifier, timeout time.Duration) *Dispatcher {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{notifier: notifier, timeout: timeout}
}

// Dispatch returns immediately. The delivery context is detached from any
// request so it survives the response being written.
func (d *Dispatcher) Dispatch(n SubmissionNotification) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[notify] panic while notifying submission %s: %v", n.SubmissionID, r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.notifier.Notify(ctx, n); err != nil {
			log.Printf("[notify] failed to notify submission %s: %v", n.SubmissionID, err)
		}
	}()
}

// Wait blocks until every dispatched notification has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
