package assemble

import (
	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

// OptionProcessor handles the global #OPTION string, the #CHANGEOPTIONxx
// per-id definitions, and their placement via the ChangeOption channel.
func OptionProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindOption:
		sc.Option = tok.Str
	case lex.KindChangeOption:
		sc.ChangeOptions[tok.Id] = tok.Str
	case lex.KindMessage, lex.KindExtendedMessage:
		if tok.Channel.Kind != channel.ChangeOption {
			return nil
		}
		warnings, cells := parseObjIds(tok.Track, tok.Str, tok.Range)
		for _, c := range cells {
			text, ok := sc.ChangeOptions[c.Id]
			if !ok {
				warnings = append(warnings, warnf(tok.Range, "#CHANGEOPTION%s was never defined", c.Id))
				continue
			}
			sc.ChangeOptionAts = append(sc.ChangeOptionAts, ChangeOptionAt{Time: c.Time, Text: text})
		}
		return warnings
	}
	return nil
}
