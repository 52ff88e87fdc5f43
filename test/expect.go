// Package test contains helper functions to remove common boilerplate from
// test functions.
package test

import (
	"testing"
)

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
	}
}

// ExpectInequality is used to test inequality between one value and another.
// ie. the test passes if the values are not equal
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, expectedValue)
	}
}

// number is the type constraint for the ExpectApproximate function
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ExpectApproximate is used to test approximate equality between one value
// and another. The tolerance argument defines how much the value can differ
// from the expected value (in either direction) and still pass the test
func ExpectApproximate[T number](t *testing.T, value T, expectedValue T, tolerance float64) {
	t.Helper()
	tol := float64(tolerance)
	if tol < 0 {
		tol = -tol
	}
	v := float64(value)
	e := float64(expectedValue)
	if v < e-tol || v > e+tol {
		t.Errorf("approximation test of type %T failed: '%v' is outside the range '%v' +/- '%v'", value, value, expectedValue, tolerance)
	}
}

// ExpectSuccess tests whether the value of v is a positive/success value
// appropriate to the type of the value:
//
//	bool == true
//	error == nil
//
// An unsupported type will fail the test
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("success test of type %T failed", v)
			return false
		}
	case error:
		if v != nil {
			t.Errorf("success test of type %T failed (%s)", v, v.Error())
			return false
		}
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}

	return true
}

// ExpectFailure tests whether the value of v is a negative/failure value
// appropriate to the type of the value:
//
//	bool == false
//	error != nil
//
// An unsupported type will fail the test
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("failure test of type %T failed", v)
			return false
		}
	case error:
		if v == nil {
			t.Errorf("failure test of type %T failed", v)
			return false
		}
	case nil:
		t.Errorf("failure test of type %T failed", v)
		return false
	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}

	return true
}
