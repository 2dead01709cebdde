package fingering

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/pkg/errors"
)

// Fret is the position held on one string: Muted, or 0 (open) through
// constants.MaxFret.
type Fret int8

const Muted Fret = -1

func (f Fret) Sounded() bool {
	return f != Muted
}

// Chart renders the fret as it appears in a chord chart: 'x' for muted.
func (f Fret) Chart() byte {
	if f == Muted {
		return 'x'
	}
	if f < 0 || f > 9 {
		panic(fmt.Sprintf("fingering: fret %d has no single character form", f))
	}
	return byte('0' + f)
}

// Fingering is one fret choice per string, lowest string first. It encodes
// to JSON as six integers with -1 for muted strings.
type Fingering [constants.NumStrings]Fret

// Start is the first fingering of the enumeration, every string muted.
func Start() Fingering {
	var f Fingering
	for i := range f {
		f[i] = Muted
	}
	return f
}

// Next advances f like an odometer: the rightmost string turns fastest, each
// string cycles muted, 0, 1, ..., MaxFret, muted, and the wrap from MaxFret
// back to muted carries one string left. It returns false once every string
// has wrapped, leaving f all muted again.
func Next(f *Fingering) bool {
	for i := len(f) - 1; i >= 0; i-- {
		switch f[i] {
		case Muted:
			f[i] = 0
			return true
		case constants.MaxFret:
			f[i] = Muted
		default:
			f[i]++
			return true
		}
	}
	return false
}

// Walk calls fn with every fingering in odometer order starting from Start.
// It stops early when fn returns false and reports how many it visited.
func Walk(fn func(Fingering) bool) int {
	f := Start()
	n := 0
	for {
		n++
		if !fn(f) {
			return n
		}
		if !Next(&f) {
			return n
		}
	}
}

// Sounded counts the strings that are not muted.
func (f Fingering) Sounded() int {
	n := 0
	for _, fret := range f {
		if fret.Sounded() {
			n++
		}
	}
	return n
}

// String renders the chord chart form, e.g. "x32010".
func (f Fingering) String() string {
	var b strings.Builder
	for _, fret := range f {
		b.WriteByte(fret.Chart())
	}
	return b.String()
}

// Parse reads the chord chart form produced by String. 'x' or 'X' marks a
// muted string.
func Parse(chart string) (Fingering, error) {
	var f Fingering
	if len(chart) != len(f) {
		return f, errors.Errorf("fingering %q: want %d strings, got %d", chart, len(f), len(chart))
	}
	for i := 0; i < len(chart); i++ {
		c := chart[i]
		switch {
		case c == 'x' || c == 'X':
			f[i] = Muted
		case c >= '0' && c <= '0'+constants.MaxFret:
			f[i] = Fret(c - '0')
		default:
			return f, errors.Errorf("fingering %q: bad fret %q on string %d", chart, c, i+1)
		}
	}
	return f, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(chart string) Fingering {
	f, err := Parse(chart)
	if err != nil {
		panic(err)
	}
	return f
}
