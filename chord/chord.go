package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/pkg/errors"
)

type Quality uint8

const (
	Major Quality = iota
	Minor
	Augmented
	Diminished
	Seventh
	MajorSeventh
	MinorSeventh
	Sus2
	Sus4
	MinorMajorSeventh
	DiminishedSeventh
	MajorNinth
	MinorNinth
	AddNinth
	AddEleventh
	MinorSixth
	MajorSixth
	AddSixthAddNinth

	numQualities
)

type definition struct {
	name      string
	intervals []uint8
}

// semitones above the root. 14 and 17 are the ninth and eleventh, they fold
// back into the octave when added to a pitch class
var definitions = [numQualities]definition{
	Major:             {"Major", []uint8{0, 4, 7}},
	Minor:             {"Minor", []uint8{0, 3, 7}},
	Augmented:         {"Augmented", []uint8{0, 4, 8}},
	Diminished:        {"Diminished", []uint8{0, 3, 6}},
	Seventh:           {"Seventh", []uint8{0, 4, 7, 10}},
	MajorSeventh:      {"MajorSeventh", []uint8{0, 4, 7, 11}},
	MinorSeventh:      {"MinorSeventh", []uint8{0, 3, 7, 10}},
	Sus2:              {"Sus2", []uint8{0, 2, 7}},
	Sus4:              {"Sus4", []uint8{0, 5, 7}},
	MinorMajorSeventh: {"MinorMajorSeventh", []uint8{0, 3, 7, 11}},
	DiminishedSeventh: {"DiminishedSeventh", []uint8{0, 3, 6, 9}},
	MajorNinth:        {"MajorNinth", []uint8{0, 4, 7, 11, 14}},
	MinorNinth:        {"MinorNinth", []uint8{0, 3, 7, 10, 14}},
	AddNinth:          {"AddNinth", []uint8{0, 4, 7, 14}},
	AddEleventh:       {"AddEleventh", []uint8{0, 4, 7, 17}},
	MinorSixth:        {"MinorSixth", []uint8{0, 3, 7, 9}},
	MajorSixth:        {"MajorSixth", []uint8{0, 4, 7, 9}},
	AddSixthAddNinth:  {"AddSixthAddNinth", []uint8{0, 4, 7, 9, 14}},
}

func (q Quality) def() definition {
	if q >= numQualities {
		panic(fmt.Sprintf("chord: unknown quality %d", uint8(q)))
	}
	return definitions[q]
}

// All returns every quality in declaration order, which is also the order
// they appear in a report.
func All() []Quality {
	res := make([]Quality, numQualities)
	for i := range res {
		res[i] = Quality(i)
	}
	return res
}

func (q Quality) String() string {
	if q >= numQualities {
		return fmt.Sprintf("Quality(%d)", uint8(q))
	}
	return definitions[q].name
}

// Intervals returns a copy of the semitone offsets that make up q.
func Intervals(q Quality) []uint8 {
	src := q.def().intervals
	res := make([]uint8, len(src))
	copy(res, src)
	return res
}

// Tones returns the chord tones of q built on root, in interval order.
func Tones(q Quality, root pitch.Class) []pitch.Class {
	intervals := q.def().intervals
	res := make([]pitch.Class, len(intervals))
	for i, interval := range intervals {
		res[i] = root.Add(interval)
	}
	return res
}

// ToneSet is Tones folded into a set, which is what membership tests use.
func ToneSet(q Quality, root pitch.Class) pitch.Set {
	return pitch.SetOf(Tones(q, root)...)
}

// Name is the chart name of a chord, e.g. "CSharp MinorSeventh".
func Name(root pitch.Class, q Quality) string {
	return root.String() + " " + q.String()
}

func ParseQuality(name string) (Quality, error) {
	trimmed := strings.TrimSpace(name)
	for i, d := range definitions {
		if strings.EqualFold(d.name, trimmed) {
			return Quality(i), nil
		}
	}
	return 0, errors.Errorf("unknown chord quality %q", name)
}
