// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoiningTypeOf(t *testing.T) {
	tests := []struct {
		r    rune
		want JoiningType
	}{
		{'a', NonJoining},
		{0x0621, NonJoining},   // HAMZA
		{0x0627, RightJoining}, // ALEF
		{0x062F, RightJoining}, // DAL
		{0x0648, RightJoining}, // WAW
		{0x0628, DualJoining},  // BEH
		{0x0645, DualJoining},  // MEEM
		{0x0640, JoinCausing},  // TATWEEL
		{0x0300, Transparent},  // COMBINING GRAVE ACCENT
		{0x064B, Transparent},  // FATHATAN
		{0x0941, Transparent},  // DEVANAGARI VOWEL SIGN U
		{0x00AD, Transparent},  // SOFT HYPHEN
		{0x200C, NonJoining},   // ZWNJ
		{0x200D, JoinCausing},  // ZWJ
		{0x0710, RightJoining}, // SYRIAC ALAPH
		{0xA872, LeftJoining},  // PHAGS-PA SUPERFIXED RA
		{0x10ACD, LeftJoining}, // MANICHAEAN HETH
		{0x1E900, DualJoining}, // ADLAM CAPITAL ALIF
		{0xFE0F, Transparent},  // VARIATION SELECTOR-16
		{0x10FFFF, NonJoining},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, JoiningTypeOf(tc.r), "JoiningTypeOf(%U)", tc.r)
	}
}

func TestJoiningTypeMasks(t *testing.T) {
	assert.True(t, LeftOrDualMask.Intersects(LeftJoining.ToMask()))
	assert.True(t, LeftOrDualMask.Intersects(DualJoining.ToMask()))
	assert.False(t, LeftOrDualMask.Intersects(RightJoining.ToMask()))
	assert.False(t, LeftOrDualMask.Intersects(Transparent.ToMask()))

	assert.True(t, RightOrDualMask.Intersects(RightJoining.ToMask()))
	assert.True(t, RightOrDualMask.Intersects(DualJoining.ToMask()))
	assert.False(t, RightOrDualMask.Intersects(LeftJoining.ToMask()))
	assert.False(t, RightOrDualMask.Intersects(NonJoining.ToMask()))

	assert.False(t, JoiningTypeMask(0).Intersects(LeftOrDualMask))
}

func TestIsTransparent(t *testing.T) {
	for _, jt := range []JoiningType{
		NonJoining, Transparent, JoinCausing, DualJoining, LeftJoining, RightJoining,
	} {
		assert.Equal(t, jt == Transparent, jt.IsTransparent(), "%v", jt)
	}
}

func TestJoiningTypeString(t *testing.T) {
	assert.Equal(t, "NonJoining", NonJoining.String())
	assert.Equal(t, "Transparent", Transparent.String())
	assert.Equal(t, "RightJoining", RightJoining.String())
	assert.Equal(t, "JoiningType(42)", JoiningType(42).String())
}

func TestJoiningRangesSorted(t *testing.T) {
	for i, e := range joiningRanges {
		if e.lo > e.hi {
			t.Errorf("range %d: lo %U > hi %U", i, e.lo, e.hi)
		}
		if i > 0 && e.lo <= joiningRanges[i-1].hi {
			t.Errorf("range %d: lo %U overlaps previous hi %U",
				i, e.lo, joiningRanges[i-1].hi)
		}
	}
}

// zwnjContextOK applies the joiner context rule of RFC 5892 Appendix A.1
// to the ZWNJ at position i, the way a label validator uses the mask
// API: scan outward past transparent characters and require a
// left-joining context before and a right-joining context after.
func zwnjContextOK(label []rune, i int) bool {
	j := i - 1
	for j >= 0 && JoiningTypeOf(label[j]).IsTransparent() {
		j--
	}
	if j < 0 || !JoiningTypeOf(label[j]).ToMask().Intersects(LeftOrDualMask) {
		return false
	}
	j = i + 1
	for j < len(label) && JoiningTypeOf(label[j]).IsTransparent() {
		j++
	}
	if j >= len(label) || !JoiningTypeOf(label[j]).ToMask().Intersects(RightOrDualMask) {
		return false
	}
	return true
}

func TestZWNJContext(t *testing.T) {
	tests := []struct {
		label string
		ok    bool
	}{
		// BEH ZWNJ BEH: dual joining on both sides.
		{"ب\u200cب", true},
		// Transparent marks between the joiner and its context are
		// skipped.
		{"بً\u200cًب", true},
		// ALEF is right joining and cannot start a left context.
		{"ا\u200cب", false},
		// No context at the label edge.
		{"\u200cب", false},
		{"ب\u200c", false},
		{"a\u200cb", false},
	}
	for _, tc := range tests {
		i := -1
		label := []rune(tc.label)
		for k, r := range label {
			if r == 0x200c {
				i = k
			}
		}
		assert.Equal(t, tc.ok, zwnjContextOK(label, i), "label %+q", tc.label)
	}
}
