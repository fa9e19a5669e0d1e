// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uts46

import (
	"flag"
	"testing"
	"unicode"

	"github.com/goidna/uts46/internal/gen"
	"github.com/goidna/uts46/internal/ucd"
)

var long = flag.Bool("long", false,
	"run tests that fetch the Unicode data files")

var statusCategory = map[string]Category{
	"valid":                  Valid,
	"ignored":                Ignored,
	"mapped":                 Mapped,
	"deviation":              Deviation,
	"disallowed":             Disallowed,
	"disallowed_STD3_valid":  DisallowedSTD3Valid,
	"disallowed_STD3_mapped": DisallowedSTD3Mapped,
}

// TestConformanceMapping checks Lookup against every row of the
// published IdnaMappingTable.txt.
func TestConformanceMapping(t *testing.T) {
	if !*long {
		t.Skip("skipping conformance test; use -long to run")
	}
	if v := gen.UnicodeVersion(); v != UnicodeVersion {
		t.Fatalf("data files are version %s; tables are %s", v, UnicodeVersion)
	}
	errors := 0
	ucd.Parse(gen.OpenUnicodeFile("idna", "", "IdnaMappingTable.txt"), func(p *ucd.Parser) {
		first, last := p.Range(0)
		cat, ok := statusCategory[p.String(1)]
		if !ok {
			t.Fatalf("%U: unknown status %q", first, p.String(1))
		}
		if cat == Valid {
			switch p.String(3) {
			case "NV8", "XV8":
				cat = DisallowedIdna2008
			}
		}
		var text string
		switch cat {
		case Mapped, Deviation, DisallowedSTD3Mapped:
			text = string(p.Runes(2))
		}
		for r := first; r <= last; r++ {
			m := Lookup(r)
			if m.Category != cat || m.Text != text {
				if errors++; errors > 50 {
					t.Fatal("too many errors")
				}
				t.Errorf("Lookup(%U) = {%v %q}; want {%v %q}",
					r, m.Category, m.Text, cat, text)
			}
		}
	})
}

// TestConformanceJoining checks JoiningTypeOf for every code point
// against ArabicShaping.txt plus the Transparent set derived from the
// Mn, Me and Cf general categories.
func TestConformanceJoining(t *testing.T) {
	if !*long {
		t.Skip("skipping conformance test; use -long to run")
	}
	letterType := map[string]JoiningType{
		"U": NonJoining,
		"T": Transparent,
		"C": JoinCausing,
		"D": DualJoining,
		"L": LeftJoining,
		"R": RightJoining,
	}
	want := map[rune]JoiningType{}
	ucd.Parse(gen.OpenUCDFile("ArabicShaping.txt"), func(p *ucd.Parser) {
		jt, ok := letterType[p.String(2)]
		if !ok {
			t.Fatalf("%U: unknown joining type %q", p.Rune(0), p.String(2))
		}
		want[p.Rune(0)] = jt
	})
	ucd.Parse(gen.OpenUCDFile("extracted/DerivedGeneralCategory.txt"), func(p *ucd.Parser) {
		switch p.String(1) {
		case "Mn", "Me", "Cf":
			first, last := p.Range(0)
			for r := first; r <= last; r++ {
				if _, ok := want[r]; !ok {
					want[r] = Transparent
				}
			}
		}
	})
	want[0x200C] = NonJoining
	want[0x200D] = JoinCausing

	errors := 0
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if got := JoiningTypeOf(r); got != want[r] {
			if errors++; errors > 50 {
				t.Fatal("too many errors")
			}
			t.Errorf("JoiningTypeOf(%U) = %v; want %v", r, got, want[r])
		}
	}
}
