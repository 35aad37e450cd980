package assemble

import (
	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

// StopProcessor handles #STOPxx beat-count definitions and their placement
// via channel 09.
func StopProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindStop:
		sc.StopDefs[tok.Id] = tok.UInt
	case lex.KindMessage, lex.KindExtendedMessage:
		if tok.Channel.Kind != channel.Stop {
			return nil
		}
		warnings, cells := parseObjIds(tok.Track, tok.Str, tok.Range)
		for _, c := range cells {
			v, ok := sc.StopDefs[c.Id]
			if !ok {
				warnings = append(warnings, warnf(tok.Range, "#STOP%s was never defined", c.Id))
				continue
			}
			sc.Stops = append(sc.Stops, StopAt{Time: c.Time, Beats: v})
		}
		return warnings
	}
	return nil
}
