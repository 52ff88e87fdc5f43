package learn_test

import (
	"testing"

	"github.com/jetsetilly/inputlearn/learn"
	"github.com/jetsetilly/inputlearn/test"
)

func TestDriver(t *testing.T) {
	var drv learn.Driver

	var a, b int
	drv.Schedule(func() bool {
		a++
		return a < 2
	})
	drv.Schedule(func() bool {
		b++
		return true
	})

	drv.Pump()
	test.ExpectEquality(t, a, 1)
	test.ExpectEquality(t, b, 1)

	// the first task finishes on this pump and is dropped
	drv.Pump()
	test.ExpectEquality(t, a, 2)
	test.ExpectEquality(t, b, 2)

	drv.Pump()
	test.ExpectEquality(t, a, 2)
	test.ExpectEquality(t, b, 3)
}

func TestDriverScheduleDuringPump(t *testing.T) {
	var drv learn.Driver

	var inner int
	drv.Schedule(func() bool {
		drv.Schedule(func() bool {
			inner++
			return false
		})
		return false
	})

	// the inner task is not resumed on the pump that scheduled it
	drv.Pump()
	test.ExpectEquality(t, inner, 0)

	drv.Pump()
	test.ExpectEquality(t, inner, 1)
}
