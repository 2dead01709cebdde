package inversion

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fingering"
	"github.com/jsphweid/fretdex/pitch"
)

// Stats describes one pass over the fingering space.
type Stats struct {
	Examined int
	Accepted int
}

// Accepts reports whether f, played in tuning t, sounds exactly the chord
// tones: nothing outside them and every one of them at least once. Strings
// doubling a tone are fine.
func Accepts(tones pitch.Set, t fingering.Tuning, f fingering.Fingering) bool {
	sounded := t.SoundedSet(f)
	return sounded.SubsetOf(tones) && tones.SubsetOf(sounded)
}

// GenerateFunc walks every fingering and hands the accepted ones to keep as
// they are found, in enumeration order.
func GenerateFunc(root pitch.Class, q chord.Quality, t fingering.Tuning, keep func(fingering.Fingering)) Stats {
	tones := chord.ToneSet(q, root)
	var stats Stats
	stats.Examined = fingering.Walk(func(f fingering.Fingering) bool {
		if Accepts(tones, t, f) {
			stats.Accepted++
			keep(f)
		}
		return true
	})
	return stats
}

// Generate returns every inversion of the chord in enumeration order.
func Generate(root pitch.Class, q chord.Quality, t fingering.Tuning) []fingering.Fingering {
	var inversions []fingering.Fingering
	GenerateFunc(root, q, t, func(f fingering.Fingering) {
		inversions = append(inversions, f)
	})
	return inversions
}
