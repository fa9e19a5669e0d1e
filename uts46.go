// Copyright 2026 The goidna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run gen.go

// Package uts46 implements the character mapping step of Unicode IDNA
// Compatibility Processing as defined by UTS (Unicode Technical Standard)
// #46, http://www.unicode.org/reports/tr46.
//
// The package classifies every Unicode code point with a mapping
// disposition and rewrites a stream of code points into its mapped form.
// It also exposes the Joining_Type property used by contextual-joiner
// validation in cursive scripts. Punycode conversion, normalization, and
// label validation are left to higher layers.
package uts46

// UnicodeVersion is the Unicode edition from which the tables in this
// package are derived.
const UnicodeVersion = "15.1.0"

// A Category is the mapping disposition UTS #46 assigns to a code point.
type Category int

const (
	// Valid code points are used as is.
	Valid Category = iota

	// Ignored code points are removed from the input.
	Ignored

	// Mapped code points are replaced by their mapping text.
	Mapped

	// Disallowed code points may not occur in a domain name.
	Disallowed

	// Deviation code points behave as Valid in non-transitional
	// processing and as Mapped in transitional processing.
	Deviation

	// DisallowedSTD3Valid code points are Valid when STD3 ASCII rules
	// are lenient and Disallowed otherwise.
	DisallowedSTD3Valid

	// DisallowedSTD3Mapped code points are Mapped when STD3 ASCII rules
	// are lenient and Disallowed otherwise.
	DisallowedSTD3Mapped

	// DisallowedIdna2008 code points are Valid under UTS #46 but
	// disallowed under IDNA2008.
	DisallowedIdna2008
)

// A Profile selects how the extended disposition set collapses onto the
// four core dispositions.
type Profile struct {
	// Transitional selects transitional processing, in which deviation
	// code points are mapped rather than used as is.
	Transitional bool

	// UseSTD3Rules enforces STD3 ASCII rules, disallowing code points
	// that are only valid or mapped when the rules are lenient.
	UseSTD3Rules bool
}

var (
	// Transitional is the profile for transitional processing.
	Transitional = &Profile{Transitional: true, UseSTD3Rules: true}

	// NonTransitional is the profile for non-transitional processing,
	// the recommended profile for resolving domain names.
	NonTransitional = &Profile{UseSTD3Rules: true}
)

// Simplify collapses cat onto the core Valid, Ignored, Mapped or
// Disallowed dispositions according to the profile.
func (p *Profile) Simplify(cat Category) Category {
	switch cat {
	case DisallowedSTD3Mapped:
		if p.UseSTD3Rules {
			cat = Disallowed
		} else {
			cat = Mapped
		}
	case DisallowedSTD3Valid:
		if p.UseSTD3Rules {
			cat = Disallowed
		} else {
			cat = Valid
		}
	case Deviation:
		if p.Transitional {
			cat = Mapped
		} else {
			cat = Valid
		}
	case DisallowedIdna2008:
		cat = Valid
	}
	return cat
}
