package assemble

import (
	"strconv"

	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

// ScrollProcessor handles #SCROLLxx factor definitions and their placement
// via the SC channel.
func ScrollProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindScroll:
		v, err := strconv.ParseFloat(tok.Str, 64)
		if err != nil {
			return []Warning{warnf(tok.Range, "invalid #SCROLL%s value %q", tok.Id, tok.Str)}
		}
		sc.ScrollDefs[tok.Id] = v
	case lex.KindMessage, lex.KindExtendedMessage:
		if tok.Channel.Kind != channel.Scroll {
			return nil
		}
		warnings, cells := parseObjIds(tok.Track, tok.Str, tok.Range)
		for _, c := range cells {
			v, ok := sc.ScrollDefs[c.Id]
			if !ok {
				warnings = append(warnings, warnf(tok.Range, "#SCROLL%s was never defined", c.Id))
				continue
			}
			sc.Scrolls = append(sc.Scrolls, ScrollAt{Time: c.Time, Factor: v})
		}
		return warnings
	}
	return nil
}
