package assemble

import "github.com/cbegin/bms-go/lex"

// VolumeProcessor tracks the #VOLWAV default relative sample volume.
func VolumeProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	if tok.Kind != lex.KindVolWav {
		return nil
	}
	sc.VolWav = tok.Vol
	return nil
}
