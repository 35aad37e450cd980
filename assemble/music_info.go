package assemble

import "github.com/cbegin/bms-go/lex"

// MusicInfoProcessor collects the chart-difficulty metadata: #DIFFICULTY,
// #PLAYLEVEL, #TOTAL, and the #LNTYPE long-note interpretation.
func MusicInfoProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindDifficulty:
		sc.Difficulty = uint8(tok.UInt)
		sc.DifficultySet = true
	case lex.KindPlayLevel:
		sc.PlayLevel = uint8(tok.UInt)
		sc.PlayLevelSet = true
	case lex.KindTotal:
		sc.Total = tok.Str
	case lex.KindLnTypeMgq:
		sc.LnTypeMgq = true
	case lex.KindLnTypeRdm:
		sc.LnTypeMgq = false
	}
	return nil
}
