// Package assemble builds the final Score model from a control-flow-resolved
// token stream by running it through a composition of small, independent
// token processors, each owning one feature family.
package assemble

import (
	"fmt"
	"strconv"

	"github.com/cbegin/bms-go/lex"
)

// ParseContext carries the parse-scoped mutable state every processor may
// need: the case-sensitivity flag and the Prompter that settles duplicate
// #WAV/#BMP definitions. It is not global — one instance per Run call.
type ParseContext struct {
	CaseSensitive bool
	Prompter      Prompter
}

// NewParseContext returns a ParseContext with the default Prompter
// (AlwaysWarn: keep the newer definition, always warn).
func NewParseContext() *ParseContext {
	return &ParseContext{Prompter: AlwaysWarn()}
}

// Warning is a non-fatal assembly-time diagnostic tied to a source range.
type Warning struct {
	Range lex.Range
	Msg   string
}

func (w Warning) Error() string { return w.Msg }

func warnf(rng lex.Range, format string, args ...any) Warning {
	return Warning{Range: rng, Msg: fmt.Sprintf(format, args...)}
}

// ObjTime is a rational position (track, numerator/denominator) within the
// score's timeline.
type ObjTime struct {
	Track         lex.Track
	Num           uint64
	Denom         uint64
}

// Less orders ObjTime first by track, then by numerator/denominator.
func (t ObjTime) Less(o ObjTime) bool {
	if t.Track != o.Track {
		return t.Track < o.Track
	}
	// cross-multiply to compare num/denom without floating point
	return t.Num*o.Denom < o.Num*t.Denom
}

// parseObjIds splits a message body into (ObjTime, ObjId) pairs. An odd
// trailing character is dropped (with a warning); "00" cells contribute
// nothing.
func parseObjIds(track lex.Track, body string, rng lex.Range) ([]Warning, []struct {
	Time ObjTime
	Id   lex.ObjId
}) {
	var warnings []Warning
	if len(body)%2 != 0 {
		warnings = append(warnings, warnf(rng, "expected 2-digit object ids"))
	}
	denom := uint64(len(body) / 2)
	if denom == 0 {
		return warnings, nil
	}
	var out []struct {
		Time ObjTime
		Id   lex.ObjId
	}
	for i := 0; i+1 < len(body); i += 2 {
		pair := body[i : i+2]
		id, err := lex.ParseObjId(pair)
		if err != nil {
			warnings = append(warnings, warnf(rng, "invalid object id %q", pair))
			continue
		}
		if id.IsNull() {
			continue
		}
		out = append(out, struct {
			Time ObjTime
			Id   lex.ObjId
		}{ObjTime{Track: track, Num: uint64(i / 2), Denom: denom}, id})
	}
	return warnings, out
}

// parseHexValues is the same skeleton as parseObjIds but decodes "00".."FF".
func parseHexValues(track lex.Track, body string, rng lex.Range) ([]Warning, []struct {
	Time  ObjTime
	Value uint8
}) {
	var warnings []Warning
	if len(body)%2 != 0 {
		warnings = append(warnings, warnf(rng, "expected 2-digit hex values"))
	}
	denom := uint64(len(body) / 2)
	if denom == 0 {
		return warnings, nil
	}
	var out []struct {
		Time  ObjTime
		Value uint8
	}
	for i := 0; i+1 < len(body); i += 2 {
		pair := body[i : i+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			warnings = append(warnings, warnf(rng, "invalid hex digits (%q)", pair))
			continue
		}
		out = append(out, struct {
			Time  ObjTime
			Value uint8
		}{ObjTime{Track: track, Num: uint64(i / 2), Denom: denom}, uint8(v)})
	}
	return warnings, out
}

// filterMessage keeps only [0-9A-Za-z.-]; it returns the original string
// unchanged when already clean, matching the source's zero-copy intent (Go
// strings are always immutable views, so "zero-copy" here just means we
// avoid building a new string when unnecessary).
func filterMessage(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '-' || c == '.') {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '-' || c == '.' {
			b = append(b, c)
		}
	}
	return string(b)
}
