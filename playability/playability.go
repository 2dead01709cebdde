package playability

import (
	"math"
	"sort"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fingering"
	"github.com/jsphweid/fretdex/util"
)

// Unbounded is the compactness of a fingering with nothing sounded.
const Unbounded = math.MaxInt32

// Filter decides whether a fingering is worth keeping.
type Filter func(fingering.Fingering) bool

// Compactness is the fret span across the sounded strings. Open strings
// count as fret 0.
func Compactness(f fingering.Fingering) int {
	lo, hi := Unbounded, -1
	for _, fret := range f {
		if !fret.Sounded() {
			continue
		}
		lo = util.Min(lo, int(fret))
		hi = util.Max(hi, int(fret))
	}
	if hi < 0 {
		return Unbounded
	}
	return hi - lo
}

// IsCompact keeps fingerings a hand can cover, spanning fewer than
// constants.MaxSpan frets.
func IsCompact(f fingering.Fingering) bool {
	return Compactness(f) < constants.MaxSpan
}

// IsContiguous rejects fingerings with a muted string between two sounded
// ones: xx12xx is fine, x1x2xx is not.
func IsContiguous(f fingering.Fingering) bool {
	first, last := -1, -1
	for i, fret := range f {
		if fret.Sounded() {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	for i := first + 1; i < last; i++ {
		if !f[i].Sounded() {
			return false
		}
	}
	return true
}

// HasMinStrings keeps fingerings that sound at least
// constants.MinSoundedStrings strings. Bare triads sound too thin.
func HasMinStrings(f fingering.Fingering) bool {
	return f.Sounded() >= constants.MinSoundedStrings
}

func DefaultFilters() []Filter {
	return []Filter{IsCompact, IsContiguous, HasMinStrings}
}

// All combines filters with a logical AND.
func All(filters ...Filter) Filter {
	return func(f fingering.Fingering) bool {
		for _, keep := range filters {
			if !keep(f) {
				return false
			}
		}
		return true
	}
}

// Playable applies the default filters.
func Playable(f fingering.Fingering) bool {
	return IsCompact(f) && IsContiguous(f) && HasMinStrings(f)
}

// Score rates a fingering, higher is easier to play. Open strings earn the
// most, then muted strings, then fretted strings, less the higher up the
// neck. Tight spans get a bonus that turns into a penalty past 5 frets.
func Score(f fingering.Fingering) int {
	score := 5 - Compactness(f)
	for _, fret := range f {
		switch {
		case fret == 0:
			score += 15
		case fret.Sounded():
			score += 10 - int(fret)
		default:
			score += 10
		}
	}
	return score
}

// Rank sorts fs by descending score in place. Equal scores keep their
// incoming order.
func Rank(fs []fingering.Fingering) {
	scores := make(map[fingering.Fingering]int, len(fs))
	for _, f := range fs {
		scores[f] = Score(f)
	}
	sort.SliceStable(fs, func(i, j int) bool {
		return scores[fs[i]] > scores[fs[j]]
	})
}
