package assemble

import (
	"strconv"

	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

// BpmProcessor handles the base #BPM, #BPMxx tempo-change definitions, and
// the two placed forms: channel 03 (a bare two-hex BPM, base-16) and channel
// 08 (a reference into the #BPMxx table).
func BpmProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindBpm:
		v, err := strconv.ParseFloat(tok.Str, 64)
		if err != nil {
			return []Warning{warnf(tok.Range, "invalid #BPM value %q", tok.Str)}
		}
		sc.Bpm = v
	case lex.KindBpmChange:
		v, err := strconv.ParseFloat(tok.Str, 64)
		if err != nil {
			return []Warning{warnf(tok.Range, "invalid #BPM%s value %q", tok.Id, tok.Str)}
		}
		sc.BpmDefs[tok.Id] = v
	case lex.KindMessage, lex.KindExtendedMessage:
		switch tok.Channel.Kind {
		case channel.BpmChangeU8:
			warnings, cells := parseHexValues(tok.Track, tok.Str, tok.Range)
			for _, c := range cells {
				sc.BpmChanges = append(sc.BpmChanges, BpmChangeAt{Time: c.Time, Bpm: float64(c.Value)})
			}
			return warnings
		case channel.BpmChange:
			warnings, cells := parseObjIds(tok.Track, tok.Str, tok.Range)
			for _, c := range cells {
				v, ok := sc.BpmDefs[c.Id]
				if !ok {
					warnings = append(warnings, warnf(tok.Range, "#BPM%s was never defined", c.Id))
					continue
				}
				sc.BpmChanges = append(sc.BpmChanges, BpmChangeAt{Time: c.Time, Bpm: v})
			}
			return warnings
		}
	}
	return nil
}
