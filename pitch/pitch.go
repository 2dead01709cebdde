package pitch

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Class is an octave independent semitone, C=0 through B=11.
type Class uint8

const (
	C Class = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// NumClasses is the size of the chromatic scale.
const NumClasses = 12

var names = [NumClasses]string{
	"C", "CSharp", "D", "DSharp", "E", "F",
	"FSharp", "G", "GSharp", "A", "ASharp", "B",
}

// conventional spellings accepted by Parse on top of the names above
var aliases = map[string]Class{
	"c#": CSharp, "db": CSharp,
	"d#": DSharp, "eb": DSharp,
	"f#": FSharp, "gb": FSharp,
	"g#": GSharp, "ab": GSharp,
	"a#": ASharp, "bb": ASharp,
}

// Must converts a raw value into a Class. Anything outside 0..11 is a bug in
// the caller, so it panics instead of returning an error.
func Must(raw int) Class {
	if raw < 0 || raw >= NumClasses {
		panic(fmt.Sprintf("pitch: raw value %d out of range", raw))
	}
	return Class(raw)
}

// Add steps the given number of semitones up, wrapping past B back to C.
func (p Class) Add(semitones uint8) Class {
	return Class((uint(p) + uint(semitones)) % NumClasses)
}

func (p Class) String() string {
	if int(p) >= NumClasses {
		return fmt.Sprintf("Class(%d)", uint8(p))
	}
	return names[p]
}

// All returns every class in scale order.
func All() []Class {
	res := make([]Class, NumClasses)
	for i := range res {
		res[i] = Class(i)
	}
	return res
}

// Parse reads a class name, either the canonical one ("CSharp") or a usual
// spelling ("C#", "Db"). Case is ignored.
func Parse(name string) (Class, error) {
	trimmed := strings.TrimSpace(name)
	for i, n := range names {
		if strings.EqualFold(n, trimmed) {
			return Class(i), nil
		}
	}
	if p, ok := aliases[strings.ToLower(trimmed)]; ok {
		return p, nil
	}
	return 0, errors.Errorf("unknown pitch class %q", name)
}
