package constants

// Instrument shape. Fret 0 is the open string.
const NumStrings = 6
const MaxFret = 9

// FretPositions counts the per-string choices: muted plus frets 0..MaxFret.
const FretPositions = MaxFret + 2

// SpaceSize is FretPositions^NumStrings, every fingering there is.
const SpaceSize = FretPositions * FretPositions * FretPositions *
	FretPositions * FretPositions * FretPositions

// Playability thresholds
const MaxSpan = 4
const MinSoundedStrings = 4

// OpenMidiPitch is the absolute pitch of each open string in standard tuning:
// E2 A2 D3 G3 B3 E4
var OpenMidiPitch = [NumStrings]uint8{40, 45, 50, 55, 59, 64}
