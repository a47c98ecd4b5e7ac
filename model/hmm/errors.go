// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import "fmt"

type Error string

func (err Error) Error() string { return string(err) }

const (
	// ErrValue reports malformed input: shape or length mismatches, empty
	// sequences or alphabets, non-positive number of states.
	ErrValue = Error("hmm: invalid value")

	// ErrLookup reports an observation symbol with no emission vector.
	ErrLookup = Error("hmm: unknown observation symbol")
)

// LookupError is returned when an observed symbol has no entry in the
// emission table.
type LookupError struct {
	Symbol any
	// Time index of the observation, -1 when not known.
	T int
}

func (e *LookupError) Error() string {
	if e.T < 0 {
		return fmt.Sprintf("%s [%s]", ErrLookup, symbolString(e.Symbol))
	}
	return fmt.Sprintf("%s [%s] at t=%d", ErrLookup, symbolString(e.Symbol), e.T)
}

// Is makes errors.Is(err, ErrLookup) true for lookup errors.
func (e *LookupError) Is(target error) bool { return target == ErrLookup }

func valueErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValue}, args...)...)
}
