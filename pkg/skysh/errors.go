package skysh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/skyprobe/pkg/sh"
)

// Precondition failures. They are detected before any output is written.
var (
	ErrInvalidBandCount = errors.New("band count out of range")
	ErrBufferLength     = errors.New("coefficient buffer length mismatch")
	ErrNonFinite        = errors.New("non-finite input")
)

// PreconditionError reports which call rejected its arguments and why.
type PreconditionError struct {
	Op       string
	NumBands int
	Lengths  [3]int
	Err      error
}

func (e *PreconditionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidBandCount):
		return fmt.Sprintf("%s: %v: %d (want 1..%d)", e.Op, e.Err, e.NumBands, MaxBands)
	case errors.Is(e.Err, ErrBufferLength):
		return fmt.Sprintf("%s: %v: r=%d g=%d b=%d (want %d)",
			e.Op, e.Err, e.Lengths[0], e.Lengths[1], e.Lengths[2], sh.NumCoeffs(e.NumBands))
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// checkArgs validates band count and buffer lengths.
func checkArgs(op string, numBands int, r, g, b []float32) error {
	if numBands < 1 || numBands > MaxBands {
		return &PreconditionError{Op: op, NumBands: numBands, Err: ErrInvalidBandCount}
	}
	n := sh.NumCoeffs(numBands)
	if len(r) != n || len(g) != n || len(b) != n {
		return &PreconditionError{
			Op:       op,
			NumBands: numBands,
			Lengths:  [3]int{len(r), len(g), len(b)},
			Err:      ErrBufferLength,
		}
	}
	return nil
}
