package theory

// Position of each natural letter on the circle of fifths relative to C
var letterFifths = map[byte]int{
	'F': -1, 'C': 0, 'G': 1, 'D': 2, 'A': 3, 'E': 4, 'B': 5,
}

// MaxFifths is the largest key signature that can be written without double accidentals
const MaxFifths = 7

// KeySignatureFifths returns the signed count of sharps (positive) or flats
// (negative) for the key. Minor keys use their relative major's signature.
// The result may exceed MaxFifths for theoretical keys such as G# major.
func KeySignatureFifths(tonic PitchClass, minor bool) int {
	fifths := letterFifths[tonic.Letter] + 7*tonic.Alter
	if minor {
		fifths -= 3
	}
	return fifths
}
