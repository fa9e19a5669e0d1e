// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import "sort"

//go:generate stringer -type=JoiningType

// JoiningType is the value of the Unicode Joining_Type property, which
// describes how a character participates in cursive joining. It is used
// by the contextual rules for U+200C ZERO WIDTH NON-JOINER in domain
// labels.
type JoiningType int

const (
	NonJoining   JoiningType = iota // U
	Transparent                     // T
	JoinCausing                     // C
	DualJoining                     // D
	LeftJoining                     // L
	RightJoining                    // R
)

// IsTransparent reports whether jt is the Transparent joining type.
// Transparent characters are skipped when scanning outward for joining
// context.
func (jt JoiningType) IsTransparent() bool { return jt == Transparent }

// ToMask returns the mask containing only jt.
func (jt JoiningType) ToMask() JoiningTypeMask { return 1 << jt }

// A JoiningTypeMask is a set of JoiningType values, with bit i
// representing the value i.
type JoiningTypeMask uint32

// The two combinations needed by the joiner context rules.
const (
	// LeftOrDualMask matches characters that join to the left.
	LeftOrDualMask JoiningTypeMask = 1<<LeftJoining | 1<<DualJoining

	// RightOrDualMask matches characters that join to the right.
	RightOrDualMask JoiningTypeMask = 1<<RightJoining | 1<<DualJoining
)

// Intersects reports whether the two masks have a joining type in common.
func (m JoiningTypeMask) Intersects(o JoiningTypeMask) bool {
	return m&o != 0
}

// joiningRange is one row of the joining table: the closed range
// [lo, hi] has joining type jt. Unlike the mapping ranges these do not
// partition the code point space; the default is NonJoining.
type joiningRange struct {
	lo, hi rune
	jt     uint8
}

// JoiningTypeOf returns the Joining_Type of r. Code points absent from
// the joining table are NonJoining.
func JoiningTypeOf(r rune) JoiningType {
	idx := sort.Search(len(joiningRanges), func(i int) bool {
		return joiningRanges[i].lo > r
	})
	if idx == 0 {
		return NonJoining
	}
	e := &joiningRanges[idx-1]
	if r > e.hi {
		return NonJoining
	}
	return JoiningType(e.jt)
}
