package learn

// Scheduler resumes cooperative tasks once per host tick. A scheduled task
// is resumed until it returns false
type Scheduler interface {
	Schedule(task func() bool)
}

// Driver is a minimal Scheduler for hosts that have a natural once-per-frame
// function, such as the Update function of an ebiten game. Call Pump() once
// per tick; every scheduled task is resumed once and tasks that return false
// are dropped.
//
// The zero value is ready for use. Driver is single-threaded: Schedule and
// Pump must be called from the same goroutine
type Driver struct {
	tasks []func() bool
}

// Schedule implements the Scheduler interface
func (d *Driver) Schedule(task func() bool) {
	if task == nil {
		return
	}
	d.tasks = append(d.tasks, task)
}

// Pump resumes every scheduled task once, in the order they were scheduled.
// A task scheduled during Pump is first resumed on the following Pump
func (d *Driver) Pump() {
	resumed := d.tasks
	d.tasks = nil

	var keep []func() bool
	for _, task := range resumed {
		if task() {
			keep = append(keep, task)
		}
	}

	// tasks scheduled while pumping have accumulated in d.tasks
	d.tasks = append(keep, d.tasks...)
}
