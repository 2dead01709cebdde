package pitch

import "strings"

// Set is a bitmask of pitch classes, bit n set when Class(n) is present.
type Set uint16

// SetOf collects the given classes. Duplicates fold into one bit.
func SetOf(classes ...Class) Set {
	var s Set
	for _, p := range classes {
		s = s.With(p)
	}
	return s
}

func (s Set) With(p Class) Set {
	return s | 1<<(p%NumClasses)
}

func (s Set) Has(p Class) bool {
	return s&(1<<(p%NumClasses)) != 0
}

// SubsetOf reports whether every class in s is also in o.
func (s Set) SubsetOf(o Set) bool {
	return s&^o == 0
}

func (s Set) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Classes lists the members in scale order.
func (s Set) Classes() []Class {
	var res []Class
	for i := 0; i < NumClasses; i++ {
		if s.Has(Class(i)) {
			res = append(res, Class(i))
		}
	}
	return res
}

func (s Set) String() string {
	var parts []string
	for _, p := range s.Classes() {
		parts = append(parts, p.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
