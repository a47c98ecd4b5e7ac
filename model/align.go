// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "fmt"

// Segment is a run of consecutive time steps spent in one state.
type Segment struct {
	// Start index (inclusive)
	Start int `json:"s"`
	// End index (exclusive)
	End int `json:"e"`
	// State index. -1 when the path could not be decoded.
	State int `json:"n"`
}

// Len returns the number of time steps in the segment.
func (s Segment) Len() int { return s.End - s.Start }

func (s Segment) String() string {
	return fmt.Sprintf("[%d,%d):%d", s.Start, s.End, s.State)
}

// AlignPath converts a state path to an alignment.
// Consecutive elements with the same state are merged into a Segment.
func AlignPath(path []int) []Segment {

	if len(path) == 0 {
		return nil
	}
	seg := Segment{Start: 0, State: path[0]}
	var segs []Segment
	for idx, v := range path {
		if v != seg.State {
			seg.End = idx
			segs = append(segs, seg)
			seg = Segment{Start: idx, State: v}
		}
	}
	seg.End = len(path)
	return append(segs, seg)
}

// CheckAlignment returns an error unless the segments are non-empty,
// contiguous and cover [0,n).
func CheckAlignment(segs []Segment, n int) error {

	last := 0
	for i, s := range segs {
		if s.Start != last {
			return fmt.Errorf("segment [%d] starts at [%d], expected [%d]", i, s.Start, last)
		}
		if s.End <= s.Start {
			return fmt.Errorf("segment [%d] is empty: %s", i, s)
		}
		last = s.End
	}
	if last != n {
		return fmt.Errorf("alignment ends at [%d], expected [%d]", last, n)
	}
	return nil
}
