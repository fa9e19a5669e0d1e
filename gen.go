// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program generates tables.go and tables_joining.go from
// IdnaMappingTable.txt, ArabicShaping.txt and DerivedGeneralCategory.txt.
// Run it via go generate.
package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/goidna/uts46/internal/gen"
	"github.com/goidna/uts46/internal/ucd"
	"golang.org/x/text/unicode/norm"
)

func main() {
	gen.Init()
	genMappingTables()
	genJoiningTables()
}

const (
	maxRune      = 0x10FFFF
	singleMarker = 1 << 15

	// Runs of at least this many adjacent one-code-point rows with
	// distinct mappings are emitted as a dense per-code-point block.
	minBlock = 4
)

// category mirrors the Category constants of the uts46 package. Only the
// names are emitted.
type category int

const (
	valid category = iota
	ignored
	mapped
	disallowed
	deviation
	disallowedSTD3Valid
	disallowedSTD3Mapped
	disallowedIdna2008
)

var catName = [...]string{
	valid:                "Valid",
	ignored:              "Ignored",
	mapped:               "Mapped",
	disallowed:           "Disallowed",
	deviation:            "Deviation",
	disallowedSTD3Valid:  "DisallowedSTD3Valid",
	disallowedSTD3Mapped: "DisallowedSTD3Mapped",
	disallowedIdna2008:   "DisallowedIdna2008",
}

var statusToCat = map[string]category{
	"valid":                  valid,
	"ignored":                ignored,
	"mapped":                 mapped,
	"disallowed":             disallowed,
	"deviation":              deviation,
	"disallowed_STD3_valid":  disallowedSTD3Valid,
	"disallowed_STD3_mapped": disallowedSTD3Mapped,
}

type row struct {
	lo, hi rune
	cat    category
	text   string
}

func loadMappingRows() []row {
	var rows []row
	ucd.Parse(gen.OpenUnicodeFile("idna", "", "IdnaMappingTable.txt"), func(p *ucd.Parser) {
		lo, hi := p.Range(0)
		cat, ok := statusToCat[p.String(1)]
		if !ok {
			log.Fatalf("%04X..%04X: unknown status %q", lo, hi, p.String(1))
		}
		var text string
		switch cat {
		case mapped, disallowedSTD3Mapped, deviation:
			text = string(p.Runes(2))
			if !norm.NFC.IsNormalString(text) {
				log.Fatalf("%04X..%04X: mapping %+q is not NFC", lo, hi, text)
			}
		}
		// NV8 and XV8 mark code points valid under UTS #46 but
		// disallowed under IDNA2008.
		if cat == valid && p.String(3) != "" {
			cat = disallowedIdna2008
		}
		rows = append(rows, row{lo, hi, cat, text})
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].lo < rows[j].lo })

	// The ranges must partition the code point space; lookup relies
	// on it.
	next := rune(0)
	for _, r := range rows {
		if r.lo != next {
			log.Fatalf("gap in mapping data at %04X", next)
		}
		next = r.hi + 1
	}
	if next != maxRune+1 {
		log.Fatalf("mapping data ends at %04X", next)
	}
	return rows
}

type entry struct {
	cat        category
	start, len int
}

func genMappingTables() {
	rows := loadMappingRows()

	var stringTable strings.Builder
	intern := func(s string) int {
		if s == "" {
			return 0
		}
		if i := strings.Index(stringTable.String(), s); i >= 0 {
			return i
		}
		i := stringTable.Len()
		stringTable.WriteString(s)
		return i
	}

	var entries []entry
	shared := map[entry]int{}
	addShared := func(e entry) int {
		if i, ok := shared[e]; ok {
			return i
		}
		shared[e] = len(entries)
		entries = append(entries, e)
		return shared[e]
	}

	type rng struct {
		base  rune
		value uint16
	}
	var ranges []rng
	addRange := func(base rune, value uint16) {
		// Adjacent ranges resolving to the same shared entry merge.
		if n := len(ranges); n > 0 && ranges[n-1].value == value && value&singleMarker != 0 {
			return
		}
		ranges = append(ranges, rng{base, value})
	}

	for i := 0; i < len(rows); {
		// A run of adjacent one-code-point rows with distinct
		// replacement text becomes a dense per-code-point block, as
		// in the cased alphabetic ranges.
		j := i
		for j < len(rows) && rows[j].hi == rows[j].lo && rows[j].text != "" {
			j++
		}
		if j-i >= minBlock {
			base := len(entries)
			if base+(j-i) >= singleMarker {
				log.Fatalf("mapping entry offset overflow at %04X", rows[i].lo)
			}
			for _, r := range rows[i:j] {
				entries = append(entries, entry{r.cat, intern(r.text), len(r.text)})
			}
			addRange(rows[i].lo, uint16(base))
			i = j
			continue
		}
		r := rows[i]
		idx := addShared(entry{r.cat, intern(r.text), len(r.text)})
		if idx >= singleMarker {
			log.Fatalf("mapping entry offset overflow at %04X", r.lo)
		}
		addRange(r.lo, singleMarker|uint16(idx))
		i++
	}

	if stringTable.Len() > 1<<16 {
		log.Fatalf("string table too large: %d bytes", stringTable.Len())
	}

	w := gen.NewCodeWriter()

	w.WriteComment(`stringTable holds the concatenated replacement text of every mapped
code point. Entries reference it by (start, len); identical strings are
interned once.`)
	w.WriteConst("stringTable", stringTable.String())

	w.WriteComment(`mappings is the mapping-entry table. Entries shared by many ranges are
interleaved with the dense per-code-point blocks of the cased and
compatibility ranges.`)
	fmt.Fprintf(w, "var mappings = [%d]mapping{\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "\t{uint8(%s), %d, %d},\n", catName[e.cat], e.start, e.len)
	}
	fmt.Fprintf(w, "}\n")
	w.Size += 4 * len(entries)

	w.WriteComment(`mappingRanges partitions [U+0000, U+10FFFF]. A value with the top bit
set points every code point of the range at the single shared entry in
its low 15 bits; otherwise the low 15 bits are the entry index of the
range's base code point.`)
	fmt.Fprintf(w, "var mappingRanges = [%d]rangeEntry{\n", len(ranges))
	for _, r := range ranges {
		fmt.Fprintf(w, "\t{0x%04X, 0x%04X},\n", r.base, r.value)
	}
	fmt.Fprintf(w, "}\n")
	w.Size += 8 * len(ranges)

	w.WriteGoFile("tables.go", "uts46")
}

var jtName = map[byte]string{
	'T': "Transparent",
	'C': "JoinCausing",
	'D': "DualJoining",
	'L': "LeftJoining",
	'R': "RightJoining",
}

func genJoiningTables() {
	types := map[rune]byte{}
	ucd.Parse(gen.OpenUCDFile("ArabicShaping.txt"), func(p *ucd.Parser) {
		t := p.String(2)
		if len(t) != 1 {
			log.Fatalf("%04X: bad joining type %q", p.Rune(0), t)
		}
		types[p.Rune(0)] = t[0]
	})
	// Everything not listed in ArabicShaping.txt derives Transparent
	// from the Mn, Me and Cf general categories, with the joiner
	// controls as the classic exceptions.
	ucd.Parse(gen.OpenUCDFile("extracted/DerivedGeneralCategory.txt"), func(p *ucd.Parser) {
		switch p.String(1) {
		case "Mn", "Me", "Cf":
			lo, hi := p.Range(0)
			for r := lo; r <= hi; r++ {
				if _, ok := types[r]; !ok {
					types[r] = 'T'
				}
			}
		}
	})
	types[0x200C] = 'U'
	types[0x200D] = 'C'

	var runes []rune
	for r, t := range types {
		if t != 'U' {
			runes = append(runes, r)
		}
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	type rng struct {
		lo, hi rune
		t      byte
	}
	var ranges []rng
	for _, r := range runes {
		if n := len(ranges); n > 0 && ranges[n-1].hi == r-1 && ranges[n-1].t == types[r] {
			ranges[n-1].hi = r
			continue
		}
		ranges = append(ranges, rng{r, r, types[r]})
	}

	w := gen.NewCodeWriter()
	w.WriteComment(`joiningRanges lists the code points whose Joining_Type is not
NonJoining, from ArabicShaping.txt and the derived Transparent set
(Mn, Me and most Cf). Sorted by lo; ranges are closed and disjoint.`)
	fmt.Fprintf(w, "var joiningRanges = [%d]joiningRange{\n", len(ranges))
	for _, r := range ranges {
		fmt.Fprintf(w, "\t{0x%04X, 0x%04X, uint8(%s)},\n", r.lo, r.hi, jtName[r.t])
	}
	fmt.Fprintf(w, "}\n")
	w.Size += 9 * len(ranges)

	w.WriteGoFile("tables_joining.go", "uts46")
}
