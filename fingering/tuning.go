package fingering

import (
	"strings"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/pkg/errors"
)

// Tuning holds the open string pitch classes, lowest string first.
type Tuning [constants.NumStrings]pitch.Class

var StandardTuning = Tuning{pitch.E, pitch.A, pitch.D, pitch.G, pitch.B, pitch.E}

// ParseTuning reads a comma separated list of six pitch names, e.g.
// "E,A,D,G,B,E" or "D,A,D,G,A,D".
func ParseTuning(s string) (Tuning, error) {
	var t Tuning
	parts := strings.Split(s, ",")
	if len(parts) != len(t) {
		return t, errors.Errorf("tuning %q: want %d strings, got %d", s, len(t), len(parts))
	}
	for i, part := range parts {
		p, err := pitch.Parse(part)
		if err != nil {
			return t, errors.Wrapf(err, "tuning %q string %d", s, i+1)
		}
		t[i] = p
	}
	return t, nil
}

func (t Tuning) String() string {
	parts := make([]string, len(t))
	for i, p := range t {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

// SoundedPitch is the pitch class a string tuned to open produces when held
// at f. Muted strings produce nothing.
func SoundedPitch(open pitch.Class, f Fret) (pitch.Class, bool) {
	if !f.Sounded() {
		return 0, false
	}
	return open.Add(uint8(f)), true
}

// Pitches returns the sounded pitch of every string, ok=false where muted.
func (t Tuning) Pitches(f Fingering) (res [constants.NumStrings]pitch.Class, ok [constants.NumStrings]bool) {
	for i, fret := range f {
		res[i], ok[i] = SoundedPitch(t[i], fret)
	}
	return res, ok
}

// SoundedSet folds the sounded pitches of f into a set.
func (t Tuning) SoundedSet(f Fingering) pitch.Set {
	var s pitch.Set
	for i, fret := range f {
		if p, ok := SoundedPitch(t[i], fret); ok {
			s = s.With(p)
		}
	}
	return s
}
