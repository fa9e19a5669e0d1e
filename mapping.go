// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import "sort"

// rangeEntry is one row of the range index. Ranges are sorted by base and
// partition the entire code point space: a code point belongs to the range
// with the greatest base not exceeding it.
type rangeEntry struct {
	base  rune
	value uint16
}

// The top bit of a range value marks a range whose code points all share
// the single mapping entry at offset. With the bit clear, each code point
// r of the range has its own entry at offset + (r - base).
const (
	singleMarker = 1 << 15
	offsetMask   = singleMarker - 1
)

// mapping is one entry of the mapping table. Replacement text for the
// text-bearing dispositions lives in stringTable.
type mapping struct {
	cat   uint8
	start uint16
	len   uint8
}

func (m *mapping) text() string {
	return stringTable[m.start : int(m.start)+int(m.len)]
}

// findMapping returns the mapping entry for r. The range index covers all
// of [0, MaxRune], so a failed lookup can only mean a malformed table and
// is treated as such.
func findMapping(r rune) *mapping {
	idx := sort.Search(len(mappingRanges), func(i int) bool {
		return mappingRanges[i].base > r
	})
	if idx == 0 {
		panic("uts46: range index does not start at U+0000")
	}
	e := &mappingRanges[idx-1]
	offset := e.value & offsetMask
	if e.value&singleMarker == 0 {
		offset += uint16(r - e.base)
	}
	return &mappings[offset]
}

// A Mapping is the disposition of a single code point together with its
// replacement text, if any.
type Mapping struct {
	Category Category

	// Text is the replacement text of the Mapped, DisallowedSTD3Mapped
	// and Deviation dispositions. It is a view into a shared immutable
	// table; it may be empty.
	Text string
}

// Lookup returns the UTS #46 mapping of r.
func Lookup(r rune) Mapping {
	e := findMapping(r)
	m := Mapping{Category: Category(e.cat)}
	switch m.Category {
	case Mapped, DisallowedSTD3Mapped, Deviation:
		m.Text = e.text()
	}
	return m
}
