package learn

import (
	"github.com/jetsetilly/inputlearn/binding"
)

// Handle wraps a Learner in the start/cancel lifecycle and exposes the run
// as a waitable value. At most one scheduled task is associated with a
// handle at a time
type Handle struct {
	l *Learner

	// whether a driver task is currently scheduled for this handle
	inflight bool

	// cooperative cancellation flag, observed by the driver task on its
	// next resumption
	cancelled bool
}

// NewHandle is the preferred method of initialisation for the Handle type
func NewHandle(conf Config) *Handle {
	return &Handle{
		l: NewLearner(conf),
	}
}

// Start begins a run, scheduling the per-tick driver task on the scheduler.
// If a task is already in flight the call is a no-op: no second task is
// spawned and the running state, including any pending button, is left
// untouched. Starting after a finished run resets and begins a fresh run
func (h *Handle) Start(sched Scheduler) {
	if h.inflight {
		return
	}

	h.cancelled = false
	h.l.Start()
	h.inflight = true

	sched.Schedule(func() bool {
		if h.cancelled {
			h.inflight = false
			return false
		}
		if h.l.Tick().Finished() {
			h.inflight = false
			return false
		}
		return true
	})
}

// Cancel requests cancellation of the in-flight task. The task itself
// unwinds cooperatively on its next resumption but the externally visible
// state changes immediately: IsComplete and IsCancelled report true and the
// binding is discarded as soon as Cancel returns
func (h *Handle) Cancel() {
	h.cancelled = true
	h.l.Cancel()
}

// IsComplete returns true once the run has finished, for any reason
func (h *Handle) IsComplete() bool {
	return h.l.State().Finished()
}

// IsCancelled returns true only if the run finished by cancellation
func (h *Handle) IsCancelled() bool {
	return h.l.State() == Cancelled
}

// Binding returns the resolved axis delegate, or nil if the run has not
// completed successfully
func (h *Handle) Binding() binding.AxisFunc {
	return h.l.Binding()
}

// Signature wraps the resolved delegate and the supplied identifier into a
// named input signature. The second return value is false if the run has
// not completed successfully
func (h *Handle) Signature(name string) (binding.Signature, bool) {
	fn := h.l.Binding()
	if fn == nil {
		return binding.Signature{}, false
	}
	return binding.NewSignature(name, fn), true
}

// Await schedules a task that resumes once per tick until the run has
// finished, then calls done. It allows other cooperative routines to wait
// on the handle without polling it themselves
func (h *Handle) Await(sched Scheduler, done func()) {
	sched.Schedule(func() bool {
		if h.IsComplete() {
			if done != nil {
				done()
			}
			return false
		}
		return true
	})
}
