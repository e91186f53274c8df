package application

import "log"

// bestEffort runs a follow-up step whose failure must not undo the write that
// preceded it. Errors are logged; the reconciliation sweep repairs the state.
func bestEffort(step string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("[saga] %s failed: %v", step, err)
	}
}
