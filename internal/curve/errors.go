package curve

import (
	"fmt"
	"math/big"
)

// InvalidPointError is returned when a point fails the on-curve check,
// either during decode or when an affine point is handed to an
// operation that requires curve membership. It carries the offending
// coordinates so a caller can log or inspect the bad point.
type InvalidPointError struct {
	X, Y *big.Int
}

func (e InvalidPointError) Error() string {
	if e.X == nil || e.Y == nil {
		return "curve: point is not on the curve"
	}
	return fmt.Sprintf("curve: point (%s, %s) is not on the curve", e.X.String(), e.Y.String())
}

// InvalidEncodingError is returned when a byte string does not match
// any of the supported SEC1 point encodings.
type InvalidEncodingError struct {
	Reason string
}

func (e InvalidEncodingError) Error() string {
	return fmt.Sprintf("curve: invalid point encoding: %s", e.Reason)
}

// InvalidScalarError is returned when a scalar supplied to a keyed
// operation falls outside the group's valid range.
type InvalidScalarError struct {
	Reason string
}

func (e InvalidScalarError) Error() string {
	return fmt.Sprintf("curve: invalid scalar: %s", e.Reason)
}
