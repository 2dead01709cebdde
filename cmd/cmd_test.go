package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree from a clean flag state.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	tuningFlag, debug, compact, limit = "E,A,D,G,B,E", false, false, 0
	rootNames, qualityNames = nil, nil
	reset := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(reset)
	rootCmd.Flags().VisitAll(reset)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestReportCommand(t *testing.T) {
	out, logs, err := run(t, "--root", "C", "--quality", "Major", "--limit", "2", "--compact")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	var decoded map[string]map[string][][]int
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded["C"]["Major"], 2)
	assert.Contains(t, logs, "report built")
	assert.Contains(t, logs, "run=")
}

func TestInspectCommand(t *testing.T) {
	out, _, err := run(t, "inspect", "C", "Major", "--limit", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "C Major (E,A,D,G,B,E): 3 fingerings", lines[0])
	assert.Contains(t, lines[1], "score=")
}

func TestInspectListsOpenCShape(t *testing.T) {
	out, _, err := run(t, "inspect", "c", "major")
	require.NoError(t, err)
	assert.Contains(t, out, "x32010  score=66  span=3\n")
}

func TestStatsCommand(t *testing.T) {
	out, _, err := run(t, "stats", "--root", "A", "--quality", "Minor")
	require.NoError(t, err)
	assert.Contains(t, out, "A Minor")
	assert.Contains(t, out, "1771561")
	assert.Contains(t, out, "0 without fingerings")
}

func TestMidiCommand(t *testing.T) {
	out, _, err := run(t, "midi", "C", "Major", "G", "Major")
	require.NoError(t, err)

	voicings, err := midi.ReadVoicings(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, voicings, 2)
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("FRETDEX_LIMIT", "1")
	out, _, err := run(t, "inspect", "E", "Minor")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "E Minor (E,A,D,G,B,E): 1 fingerings\n"), out)

	// the flag wins over the environment
	out, _, err = run(t, "inspect", "E", "Minor", "--limit", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "E Minor (E,A,D,G,B,E): 2 fingerings\n"), out)
}

func TestBadInput(t *testing.T) {
	cases := [][]string{
		{"--tuning", "E,A,D,G,B", "--root", "C", "--quality", "Major"},
		{"--root", "H"},
		{"--quality", "Power"},
		{"--limit", "-1"},
		{"inspect", "C"},
		{"inspect", "C", "Power"},
		{"midi", "C", "Major", "G"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, _, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestParseChordArgs(t *testing.T) {
	got, err := parseChordArgs([]string{"C#", "MinorSeventh", "Bb", "Sus4"})
	require.NoError(t, err)
	assert.Equal(t, []chordArg{
		{pitch.CSharp, chord.MinorSeventh},
		{pitch.ASharp, chord.Sus4},
	}, got)
}
