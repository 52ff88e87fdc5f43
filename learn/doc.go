// Package learn implements interactive learning of a control binding. The
// user performs the input gesture they want to bind - deflecting an axis,
// pressing a button or a key, or pressing two buttons to define the two
// directions of an axis - and the learner resolves the gesture to a reusable
// axis delegate.
//
// The Learner type is the polling state machine. It is driven by calling
// Tick() once per host tick until it reports a finished state. The Handle
// type wraps a Learner in the start/cancel lifecycle and schedules the
// ticking on a cooperative Scheduler, such as the Driver type pumped from an
// ebiten Update function.
//
// Everything in this package is single-threaded. A learner is resumed once
// per tick and is never called from more than one goroutine; no locking is
// used or required. Two learner instances are fully independent of one
// another.
package learn
