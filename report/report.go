package report

import (
	"log/slog"
	"time"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fingering"
	"github.com/jsphweid/fretdex/inversion"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/playability"
)

// Stats counts what happened to one chord on its way into the report.
type Stats struct {
	Examined int
	Accepted int
	Kept     int
}

// Entry is the ranked fingerings of a single chord.
type Entry struct {
	Root       pitch.Class
	Quality    chord.Quality
	Fingerings []fingering.Fingering
	Stats      Stats
}

type key struct {
	root    pitch.Class
	quality chord.Quality
}

// Report maps root and quality to ranked fingerings. It is not modified after
// Build returns.
type Report struct {
	tuning    fingering.Tuning
	roots     []pitch.Class
	qualities []chord.Quality
	entries   map[key]*Entry
}

type config struct {
	tuning    fingering.Tuning
	roots     []pitch.Class
	qualities []chord.Quality
	filters   []playability.Filter
	limit     int
	logger    *slog.Logger
}

type Option func(*config)

func WithTuning(t fingering.Tuning) Option {
	return func(c *config) {
		c.tuning = t
	}
}

// WithRoots restricts the report to the given roots. Order in the report
// stays scale order.
func WithRoots(roots ...pitch.Class) Option {
	return func(c *config) {
		if len(roots) > 0 {
			c.roots = roots
		}
	}
}

// WithQualities restricts the report to the given qualities.
func WithQualities(qualities ...chord.Quality) Option {
	return func(c *config) {
		if len(qualities) > 0 {
			c.qualities = qualities
		}
	}
}

func WithFilters(filters ...playability.Filter) Option {
	return func(c *config) {
		c.filters = filters
	}
}

// WithLimit keeps only the n best fingerings of every chord. 0 keeps all.
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func defaultConfig() *config {
	return &config{
		tuning:    fingering.StandardTuning,
		roots:     pitch.All(),
		qualities: chord.All(),
		filters:   playability.DefaultFilters(),
		logger:    slog.Default(),
	}
}

// Build computes every requested chord: inversions are filtered as they are
// generated, then ranked by score.
func Build(opts ...Option) *Report {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Report{
		tuning:    cfg.tuning,
		roots:     ordered(cfg.roots, pitch.All()),
		qualities: ordered(cfg.qualities, chord.All()),
		entries:   make(map[key]*Entry),
	}

	keep := playability.All(cfg.filters...)
	start := time.Now()
	var total Stats
	for _, root := range r.roots {
		for _, q := range r.qualities {
			e := buildEntry(root, q, cfg.tuning, keep, cfg.limit)
			r.entries[key{root, q}] = e

			total.Examined += e.Stats.Examined
			total.Accepted += e.Stats.Accepted
			total.Kept += e.Stats.Kept
			cfg.logger.Debug("chord done",
				"chord", chord.Name(root, q),
				"examined", e.Stats.Examined,
				"accepted", e.Stats.Accepted,
				"kept", e.Stats.Kept,
			)
		}
	}
	cfg.logger.Info("report built",
		"tuning", cfg.tuning.String(),
		"chords", len(r.entries),
		"examined", total.Examined,
		"accepted", total.Accepted,
		"kept", total.Kept,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return r
}

func buildEntry(root pitch.Class, q chord.Quality, t fingering.Tuning, keep playability.Filter, limit int) *Entry {
	e := &Entry{Root: root, Quality: q, Fingerings: []fingering.Fingering{}}
	stats := inversion.GenerateFunc(root, q, t, func(f fingering.Fingering) {
		if keep(f) {
			e.Fingerings = append(e.Fingerings, f)
		}
	})
	playability.Rank(e.Fingerings)
	if limit > 0 && len(e.Fingerings) > limit {
		e.Fingerings = e.Fingerings[:limit]
	}
	e.Stats = Stats{
		Examined: stats.Examined,
		Accepted: stats.Accepted,
		Kept:     len(e.Fingerings),
	}
	return e
}

// ordered returns the members of want in the order they appear in all,
// dropping duplicates.
func ordered[T comparable](want []T, all []T) []T {
	set := make(map[T]bool, len(want))
	for _, v := range want {
		set[v] = true
	}
	res := make([]T, 0, len(set))
	for _, v := range all {
		if set[v] {
			res = append(res, v)
		}
	}
	return res
}

func (r *Report) Tuning() fingering.Tuning {
	return r.tuning
}

func (r *Report) Roots() []pitch.Class {
	return append([]pitch.Class(nil), r.roots...)
}

func (r *Report) Qualities() []chord.Quality {
	return append([]chord.Quality(nil), r.qualities...)
}

// Get returns the ranked fingerings of a chord, nil if the report doesn't
// cover it.
func (r *Report) Get(root pitch.Class, q chord.Quality) []fingering.Fingering {
	e, ok := r.entries[key{root, q}]
	if !ok {
		return nil
	}
	return append([]fingering.Fingering(nil), e.Fingerings...)
}

// Entries returns every entry, roots in scale order and qualities in
// declaration order within each root.
func (r *Report) Entries() []Entry {
	res := make([]Entry, 0, len(r.entries))
	for _, root := range r.roots {
		for _, q := range r.qualities {
			e := *r.entries[key{root, q}]
			e.Fingerings = append([]fingering.Fingering{}, e.Fingerings...)
			res = append(res, e)
		}
	}
	return res
}
