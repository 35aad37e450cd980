package assemble

import "github.com/cbegin/bms-go/lex"

// RepresentationProcessor records whether #BASE 62 was declared. The actual
// id-case normalization runs as a pre-pass before assembly (see bms.Parse);
// this processor exists so the flag is visible to anything inspecting the
// resolved token stream alongside the rest of the processor family.
func RepresentationProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	if tok.Kind == lex.KindBase62 {
		ctx.CaseSensitive = true
	}
	return nil
}
