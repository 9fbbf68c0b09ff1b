package presets

// GetScaleDSLGrammar returns the Lark grammar for one exercise statement.
// Every parameter is optional; missing ones keep the default exercise.
//
//	scale(key=Bb, mode=harmonic_minor, rhythm=sixteenths, slur=slur_four, octaves=2, start=4)
func GetScaleDSLGrammar() string {
	return `
// Scale DSL Grammar - one practice exercise per statement
// SYNTAX:
//   scale(key=C)
//   scale(key=F#, mode=melodic_minor, rhythm=eighth_two_sixteenths, octaves=3)
//   scale(key=Eb, slur=slur_two_tongue_two, start=3)

// ---------- Start rule ----------
start: statement

// ---------- Statements ----------
statement: scale_call

// ---------- Scale ----------
scale_call: "scale" "(" scale_params? ")"

scale_params: scale_named_params

scale_named_params: scale_named_param ("," SP scale_named_param)*
scale_named_param: "key" "=" KEY_NAME
                 | "mode" "=" MODE_NAME
                 | "rhythm" "=" RHYTHM_NAME
                 | "slur" "=" SLUR_NAME
                 | "octaves" "=" NUMBER  // 1-3
                 | "start" "=" NUMBER    // starting octave, 3-4

// ---------- Keys ----------
KEY_NAME: /[A-G][#b]?/

// ---------- Modes ----------
MODE_NAME: "major" | "minor" | "harmonic_minor" | "melodic_minor"

// ---------- Rhythms ----------
RHYTHM_NAME: "long_octave" | "sixteenths" | "eighth_two_sixteenths"

// ---------- Articulation ----------
SLUR_NAME: "slur_two_tongue_two" | "tongue_two_slur_two" | "slur_two_slur_two"
         | "tongue_one_slur_two_tongue_one" | "tongue_one_slur_three"
         | "slur_three_tongue_one" | "tongued" | "slur_four"

// ---------- Terminals ----------
SP: " "+
NUMBER: /-?\d+(\.\d+)?/
`
}
