package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fingering"
	"github.com/jsphweid/fretdex/pitch"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

// strum spacing between strings and how long each chord rings
const strumTicks = ticksPerQuarter / 16
const holdTicks = ticksPerQuarter * 2

const channel = 0
const velocity = 90
const tempo = 90.0

// Chord is one fingering to render, with the name written as a marker.
type Chord struct {
	Root      pitch.Class
	Quality   chord.Quality
	Fingering fingering.Fingering
}

// OpenKeys picks an absolute MIDI key for every open string: the key of the
// tuned pitch class closest to the standard tuning key of that string.
func OpenKeys(t fingering.Tuning) [constants.NumStrings]uint8 {
	var keys [constants.NumStrings]uint8
	for i, class := range t {
		ref := int(constants.OpenMidiPitch[i])
		for k := ref - 6; k < ref+6; k++ {
			if k%pitch.NumClasses == int(class) {
				keys[i] = uint8(k)
				break
			}
		}
	}
	return keys
}

// Voicing lists the sounded keys of f, lowest string first.
func Voicing(t fingering.Tuning, f fingering.Fingering) []uint8 {
	open := OpenKeys(t)
	var keys []uint8
	for i, fret := range f {
		if fret.Sounded() {
			keys = append(keys, open[i]+uint8(fret))
		}
	}
	return keys
}

// Render strums every chord low to high, lets it ring, then releases it.
func Render(t fingering.Tuning, chords []Chord) *smf.SMF {
	res := smf.SMF{TimeFormat: smf.MetricTicks(ticksPerQuarter)}

	var track smf.Track
	track.Add(0, smf.MetaTempo(tempo))
	for _, c := range chords {
		track.Add(0, smf.MetaMarker(chord.Name(c.Root, c.Quality)+" "+c.Fingering.String()))
		keys := Voicing(t, c.Fingering)
		for i, key := range keys {
			var delta uint32
			if i > 0 {
				delta = strumTicks
			}
			track.Add(delta, gomidi.NoteOn(channel, key, velocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = holdTicks
			}
			track.Add(delta, gomidi.NoteOff(channel, key))
		}
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return &res
}

// Write renders chords as a Standard MIDI File onto w.
func Write(w io.Writer, t fingering.Tuning, chords []Chord) error {
	if _, err := Render(t, chords).WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}
	return nil
}

// ReadVoicings parses a file produced by Write and returns the keys struck
// for each chord, in order.
func ReadVoicings(r io.Reader) (voicings [][]uint8, e error) {
	// smf panics on some malformed input instead of returning an error
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec, ok := recover().(string); ok {
			e = errors.New(rec)
		}
	}()

	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read midi file: %w", err)
	}
	parsed, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parse midi file: %w", err)
	}

	for _, track := range parsed.Tracks {
		var current []uint8
		for _, event := range track {
			var ch, key, vel uint8
			switch {
			case event.Message.GetNoteOn(&ch, &key, &vel):
				current = append(current, key)
			case event.Message.GetNoteOff(&ch, &key, &vel):
				if len(current) > 0 {
					voicings = append(voicings, current)
					current = nil
				}
			}
		}
	}
	return voicings, nil
}
