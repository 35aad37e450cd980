package assemble

import "github.com/cbegin/bms-go/lex"

// TextProcessor collects #TEXTxx string definitions, addressable by id for
// downstream consumers that display on-screen messages.
func TextProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	if tok.Kind != lex.KindText {
		return nil
	}
	sc.Texts[tok.Id] = TextAt{Id: tok.Id, Text: tok.Str}
	return nil
}
