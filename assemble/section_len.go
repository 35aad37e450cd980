package assemble

import (
	"strconv"

	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

// SectionLenProcessor reads channel 02 messages, which carry the new
// length-relative-to-4/4 factor as a literal decimal body (not a pair list).
func SectionLenProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	if tok.Kind != lex.KindMessage && tok.Kind != lex.KindExtendedMessage {
		return nil
	}
	if tok.Channel.Kind != channel.SectionLen {
		return nil
	}
	v, err := strconv.ParseFloat(tok.Str, 64)
	if err != nil {
		return []Warning{warnf(tok.Range, "invalid section length %q", tok.Str)}
	}
	sc.SectionLen = append(sc.SectionLen, SectionLenAt{Track: tok.Track, Factor: v})
	return nil
}
