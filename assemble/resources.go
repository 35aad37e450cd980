package assemble

import "github.com/cbegin/bms-go/lex"

// ResourcesProcessor collects the miscellaneous file/path resources that
// don't belong to a bigger family: #PATH_WAV, #MIDIFILE, and the #OCT/FP
// marker.
func ResourcesProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindPathWav:
		sc.PathWav = tok.Str
	case lex.KindMidiFile:
		sc.MidiFile = tok.Str
	case lex.KindOctFp:
		sc.OctFp = true
	}
	return nil
}
