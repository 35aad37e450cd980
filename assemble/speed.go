package assemble

import (
	"strconv"

	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

// SpeedProcessor handles #SPEEDxx factor definitions and their placement via
// the SP channel.
func SpeedProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindSpeed:
		v, err := strconv.ParseFloat(tok.Str, 64)
		if err != nil {
			return []Warning{warnf(tok.Range, "invalid #SPEED%s value %q", tok.Id, tok.Str)}
		}
		sc.SpeedDefs[tok.Id] = v
	case lex.KindMessage, lex.KindExtendedMessage:
		if tok.Channel.Kind != channel.Speed {
			return nil
		}
		warnings, cells := parseObjIds(tok.Track, tok.Str, tok.Range)
		for _, c := range cells {
			v, ok := sc.SpeedDefs[c.Id]
			if !ok {
				warnings = append(warnings, warnf(tok.Range, "#SPEED%s was never defined", c.Id))
				continue
			}
			sc.Speeds = append(sc.Speeds, SpeedAt{Time: c.Time, Factor: v})
		}
		return warnings
	}
	return nil
}
