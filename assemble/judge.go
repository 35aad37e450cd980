package assemble

import "github.com/cbegin/bms-go/lex"

// JudgeProcessor tracks the overall #RANK judge window and any #EXRANKxx
// per-id overrides.
func JudgeProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindRank:
		sc.Rank = tok.Judge
	case lex.KindExRank:
		sc.ExRank[tok.Id] = tok.Judge
	}
	return nil
}
