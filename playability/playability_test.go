package playability

import (
	"testing"

	"github.com/jsphweid/fretdex/fingering"
	"github.com/stretchr/testify/assert"
)

func chart(s string) fingering.Fingering {
	return fingering.MustParse(s)
}

func TestCompactness(t *testing.T) {
	cases := []struct {
		chart string
		want  int
	}{
		{"x32010", 3},
		{"0xxx3x", 3},
		{"0xxx4x", 4},
		{"x5555x", 0},
		{"9xxxx0", 9},
		{"xxxxxx", Unbounded},
	}
	for _, c := range cases {
		t.Run(c.chart, func(t *testing.T) {
			assert.Equal(t, c.want, Compactness(chart(c.chart)))
		})
	}
}

func TestIsCompactBoundary(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsCompact(chart("03xxxx")))
	assert.False(IsCompact(chart("04xxxx")))
	assert.False(IsCompact(chart("xxxxxx")))
}

func TestIsContiguous(t *testing.T) {
	cases := []struct {
		f    fingering.Fingering
		want bool
	}{
		{fingering.Fingering{-1, -1, 0, 1, -1, -1}, true},
		{fingering.Fingering{0, -1, 1, -1, -1, -1}, false},
		{fingering.Fingering{-1, -1, -1, -1, -1, -1}, true},
		{fingering.Fingering{0, 1, 2, 3, 4, 5}, true},
		{fingering.Fingering{-1, 3, 2, 0, 1, 0}, true},
		{fingering.Fingering{3, 2, 0, 0, 3, -1}, true},
		{fingering.Fingering{3, 2, 0, 0, -1, 3}, false},
	}
	for _, c := range cases {
		t.Run(c.f.String(), func(t *testing.T) {
			assert.Equal(t, c.want, IsContiguous(c.f))
		})
	}
}

func TestHasMinStrings(t *testing.T) {
	assert := assert.New(t)
	assert.True(HasMinStrings(chart("xx0232")))
	assert.False(HasMinStrings(chart("xxx232")))
	assert.True(HasMinStrings(chart("x32010")))
}

func TestThreeStringFingeringsAlwaysFail(t *testing.T) {
	// compact and contiguous, still only three strings
	for _, s := range []string{"xxx000", "000xxx", "x010xx", "xxx555"} {
		f := chart(s)
		assert.True(t, IsCompact(f) && IsContiguous(f), s)
		assert.False(t, Playable(f), s)
		assert.False(t, All(DefaultFilters()...)(f), s)
	}
}

func TestFiltersAreOrderInvariant(t *testing.T) {
	filters := DefaultFilters()
	reversed := []Filter{filters[2], filters[1], filters[0]}
	fingering.Walk(func(f fingering.Fingering) bool {
		if All(filters...)(f) != All(reversed...)(f) || All(filters...)(f) != Playable(f) {
			t.Fatalf("filters disagree on %v", f)
		}
		return true
	})
}

func TestScore(t *testing.T) {
	assert := assert.New(t)
	// 10 + 7 + 8 + 15 + 9 + 15, span 3
	assert.Equal(66, Score(chart("x32010")))
	assert.Equal(5+90, Score(chart("000000")))
	assert.Equal(5-Unbounded+60, Score(chart("xxxxxx")))
}

func TestScoreIsNotClamped(t *testing.T) {
	// span 9 makes the compactness term negative
	assert.Equal(t, 5-9+15+1+40, Score(chart("9xxxx0")))
}

func TestRankPrefersOpenStrings(t *testing.T) {
	// same span, one more open string
	fewerOpen := chart("x32013")
	moreOpen := chart("x32010")
	fs := []fingering.Fingering{fewerOpen, moreOpen}
	Rank(fs)
	assert.Equal(t, moreOpen, fs[0])
	assert.Greater(t, Score(moreOpen), Score(fewerOpen))
}

func TestRankIsStable(t *testing.T) {
	// mirror images score the same
	a := chart("x5555x")
	b := chart("x6666x")
	c := chart("xx5555")
	d := chart("5555xx")
	fs := []fingering.Fingering{c, b, d, a}
	Rank(fs)
	assert.Equal(t, []fingering.Fingering{c, d, a, b}, fs)
}
