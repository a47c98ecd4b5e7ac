// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"reflect"
	"testing"
)

func TestAlignPath(t *testing.T) {

	path := []int{0, 0, 0, 1, 1, 2, 0}
	segs := AlignPath(path)
	expected := []Segment{{0, 3, 0}, {3, 5, 1}, {5, 6, 2}, {6, 7, 0}}
	if !reflect.DeepEqual(segs, expected) {
		t.Fatalf("expected %v, got %v", expected, segs)
	}
	if err := CheckAlignment(segs, len(path)); err != nil {
		t.Fatal(err)
	}
	if segs[1].Len() != 2 {
		t.Fatalf("expected length 2, got %d", segs[1].Len())
	}
	if segs[0].String() != "[0,3):0" {
		t.Fatalf("unexpected string %s", segs[0])
	}
}

func TestAlignPathEdges(t *testing.T) {

	if segs := AlignPath(nil); segs != nil {
		t.Fatalf("expected nil, got %v", segs)
	}
	segs := AlignPath([]int{-1, -1, -1})
	if len(segs) != 1 || segs[0] != (Segment{0, 3, -1}) {
		t.Fatalf("unexpected alignment %v", segs)
	}
}

func TestCheckAlignment(t *testing.T) {

	if err := CheckAlignment([]Segment{{0, 3, 0}, {4, 8, 1}}, 8); err == nil {
		t.Fatal("expected gap to be invalid")
	}
	if err := CheckAlignment([]Segment{{0, 3, 0}, {3, 3, 1}}, 3); err == nil {
		t.Fatal("expected empty segment to be invalid")
	}
	if err := CheckAlignment([]Segment{{0, 3, 0}}, 5); err == nil {
		t.Fatal("expected short alignment to be invalid")
	}
}
