package runtime

import (
	"math"

	"github.com/npillmayer/dendron"
)

// Integer arithmetic for Dendron. Addition, subtraction, multiplication and
// negation wrap around on overflow, as Go's int32 arithmetic does.

// Add returns a + b.
func Add(a, b int32) int32 { return a + b }

// Subtract returns a - b.
func Subtract(a, b int32) int32 { return a - b }

// Multiply returns a * b.
func Multiply(a, b int32) int32 { return a * b }

// Negate returns -a.
func Negate(a int32) int32 { return -a }

// Divide returns a / b, truncated toward zero.
// Fails with dendron.DivideByZero if b is 0.
func Divide(a, b int32) (int32, error) {
	if b == 0 {
		tracer().Debugf("division by zero: %d / %d", a, b)
		return 0, dendron.Errorf(dendron.DivideByZero, "%d / %d", a, b)
	}
	return a / b, nil
}

// SquareRoot returns the floor of the square root of a.
// Fails with dendron.IllegalValue if a is negative.
func SquareRoot(a int32) (int32, error) {
	if a < 0 {
		return 0, dendron.Errorf(dendron.IllegalValue, "square root of %d", a)
	}
	r := int64(math.Sqrt(float64(a)))
	x := int64(a)
	for r*r > x { // correct rounding errors of float64
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return int32(r), nil
}
