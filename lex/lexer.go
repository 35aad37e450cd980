package lex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cbegin/bms-go/internal/cursor"
	"github.com/cbegin/bms-go/lex/channel"
)

// Range re-exports the cursor's source range so callers of this package
// never need to import internal/cursor directly.
type Range = cursor.Range

// Warning is a non-fatal diagnostic tied to a source range.
type Warning struct {
	Range Range
	Msg   string
}

func (w Warning) Error() string { return w.Msg }

// Lexer drives a Cursor over BMS source text, emitting a flat Token stream.
type Lexer struct {
	c        *cursor.Cursor
	parser   channel.Parser
	warnings []Warning
}

// NewLexer constructs a Lexer over src, parameterized by the channel parser
// for the caller's target keyboard layout.
func NewLexer(src string, parser channel.Parser) *Lexer {
	return &Lexer{c: cursor.New(src), parser: parser}
}

func (l *Lexer) warn(rng Range, format string, args ...any) {
	l.warnings = append(l.warnings, Warning{Range: rng, Msg: fmt.Sprintf(format, args...)})
}

// Lex tokenizes the entire source, returning the token sequence, any
// collected warnings, and a fatal error if lexing could not continue.
func (l *Lexer) Lex() ([]Token, []Warning, error) {
	var tokens []Token
	for {
		tok, done, err := l.next()
		if err != nil {
			return tokens, l.warnings, err
		}
		if done {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, l.warnings, nil
}

func (l *Lexer) errExpected(rng Range, what string) error {
	return cursor.MakeErrAt(rng, "expected %s", what)
}

func (l *Lexer) nextToken() (string, Range, bool) { return l.c.NextToken() }

func (l *Lexer) requireToken(what string) (string, Range, error) {
	tok, rng, ok := l.nextToken()
	if !ok {
		return "", Range{}, l.errExpected(Range{Start: l.c.Offset(), End: l.c.Offset()}, what)
	}
	return tok, rng, nil
}

func (l *Lexer) requireInt(what string) (int64, Range, error) {
	tok, rng, err := l.requireToken(what)
	if err != nil {
		return 0, rng, err
	}
	v, perr := strconv.ParseInt(tok, 10, 64)
	if perr != nil {
		return 0, rng, l.errExpected(rng, "integer")
	}
	return v, rng, nil
}

func (l *Lexer) requireUint32(what string) (uint32, Range, error) {
	v, rng, err := l.requireInt(what)
	if err != nil {
		return 0, rng, err
	}
	return uint32(v), rng, nil
}

// requireUint64 parses an unsigned literal directly, so a negative literal
// fails fatally rather than silently parsing as a signed int64 and needing
// a separate range check.
func (l *Lexer) requireUint64(what string) (uint64, Range, error) {
	tok, rng, err := l.requireToken(what)
	if err != nil {
		return 0, rng, err
	}
	v, perr := strconv.ParseUint(tok, 10, 64)
	if perr != nil {
		return 0, rng, l.errExpected(rng, "non-negative integer")
	}
	return v, rng, nil
}

func (l *Lexer) requireId(idStr string, rng Range) (ObjId, error) {
	id, err := ParseObjId(idStr)
	if err != nil {
		return ObjId{}, cursor.MakeErrAt(rng, "invalid object id %q", idStr)
	}
	return id, nil
}

// next lexes a single token, looping past lines this lexer chooses to skip
// (unknown #BASE values, malformed #EXT payloads) rather than failing.
func (l *Lexer) next() (Token, bool, error) {
	for {
		commandTok, cmdRange, ok := l.nextToken()
		if !ok {
			return Token{}, true, nil
		}
		upper := strings.ToUpper(commandTok)

		switch upper {
		case "#PLAYER":
			tok, rng, err := l.requireToken("one of 1, 2 or 3")
			if err != nil {
				return Token{}, false, err
			}
			mode, perr := ParsePlayerMode(tok)
			if perr != nil {
				return Token{}, false, l.errExpected(rng, "one of 1, 2 or 3")
			}
			return Token{Kind: KindPlayer, Range: cmdRange, PlayerMode: mode}, false, nil
		case "#GENRE":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindGenre, Range: rng, Str: s}, false, nil
		case "#TITLE":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindTitle, Range: rng, Str: s}, false, nil
		case "#SUBTITLE":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindSubTitle, Range: rng, Str: s}, false, nil
		case "#ARTIST":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindArtist, Range: rng, Str: s}, false, nil
		case "#SUBARTIST":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindSubArtist, Range: rng, Str: s}, false, nil
		case "#DIFFICULTY":
			tok, rng, err := l.requireToken("difficulty")
			if err != nil {
				return Token{}, false, err
			}
			v, perr := strconv.ParseUint(tok, 10, 8)
			if perr != nil {
				return Token{}, false, l.errExpected(rng, "integer")
			}
			return Token{Kind: KindDifficulty, Range: rng, UInt: uint32(v)}, false, nil
		case "#STAEGFILE", "#STAGEFILE":
			s, rng := l.c.NextLineTrimmed()
			if s == "" {
				return Token{}, false, l.errExpected(rng, "stage filename")
			}
			return Token{Kind: KindStageFile, Range: rng, Str: s}, false, nil
		case "#BANNER":
			s, rng := l.c.NextLineTrimmed()
			if s == "" {
				return Token{}, false, l.errExpected(rng, "banner filename")
			}
			return Token{Kind: KindBanner, Range: rng, Str: s}, false, nil
		case "#BACKBMP":
			s, rng := l.c.NextLineTrimmed()
			if s == "" {
				return Token{}, false, l.errExpected(rng, "backbmp filename")
			}
			return Token{Kind: KindBackBmp, Range: rng, Str: s}, false, nil
		case "#TOTAL":
			tok, rng, err := l.requireToken("gauge increase rate")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindTotal, Range: rng, Str: tok}, false, nil
		case "#BPM":
			tok, rng, err := l.requireToken("bpm")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindBpm, Range: rng, Str: tok}, false, nil
		case "#PLAYLEVEL":
			tok, rng, err := l.requireToken("play level")
			if err != nil {
				return Token{}, false, err
			}
			v, perr := strconv.ParseUint(tok, 10, 8)
			if perr != nil {
				return Token{}, false, l.errExpected(rng, "integer")
			}
			return Token{Kind: KindPlayLevel, Range: rng, UInt: uint32(v)}, false, nil
		case "#RANK":
			tok, rng, err := l.requireToken("one of [0,4]")
			if err != nil {
				return Token{}, false, err
			}
			judge, perr := ParseJudgeLevel(tok)
			if perr != nil {
				return Token{}, false, l.errExpected(rng, "one of [0,4]")
			}
			return Token{Kind: KindRank, Range: rng, Judge: judge}, false, nil
		case "#LNTYPE":
			tok, _, _ := l.nextToken()
			if tok == "2" {
				return Token{Kind: KindLnTypeMgq, Range: cmdRange}, false, nil
			}
			return Token{Kind: KindLnTypeRdm, Range: cmdRange}, false, nil

		case "#RANDOM":
			v, rng, err := l.requireUint32("random max")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindRandom, Range: rng, UInt: v}, false, nil
		case "#SETRANDOM":
			v, rng, err := l.requireUint32("random value")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindSetRandom, Range: rng, UInt: v}, false, nil
		case "#IF":
			v, rng, err := l.requireUint32("random target")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindIf, Range: rng, UInt: v}, false, nil
		case "#ELSEIF":
			v, rng, err := l.requireUint32("random target")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindElseIf, Range: rng, UInt: v}, false, nil
		case "#ELSE":
			return Token{Kind: KindElse, Range: cmdRange}, false, nil
		case "#ENDIF":
			return Token{Kind: KindEndIf, Range: cmdRange}, false, nil
		case "#ENDRANDOM":
			return Token{Kind: KindEndRandom, Range: cmdRange}, false, nil
		case "#SWITCH":
			v, rng, err := l.requireUint32("switch max")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindSwitch, Range: rng, UInt: v}, false, nil
		case "#SETSWITCH":
			v, rng, err := l.requireUint32("switch value")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindSetSwitch, Range: rng, UInt: v}, false, nil
		case "#CASE":
			v, rng, err := l.requireUint32("switch case value")
			if err != nil {
				return Token{}, false, err
			}
			return Token{Kind: KindCase, Range: rng, UInt: v}, false, nil
		case "#SKIP":
			return Token{Kind: KindSkip, Range: cmdRange}, false, nil
		case "#DEF":
			return Token{Kind: KindDef, Range: cmdRange}, false, nil
		case "#ENDSW":
			return Token{Kind: KindEndSwitch, Range: cmdRange}, false, nil

		case "#VOLWAV":
			tok, rng, err := l.requireToken("volume")
			if err != nil {
				return Token{}, false, err
			}
			v, perr := strconv.ParseUint(tok, 10, 8)
			if perr != nil {
				return Token{}, false, l.errExpected(rng, "integer")
			}
			return Token{Kind: KindVolWav, Range: rng, Vol: Volume{RelativePercent: uint8(v)}}, false, nil
		case "#BASE":
			base, rng := l.c.NextLineTrimmed()
			if base != "62" {
				l.warn(rng, "unknown base declared: %q", base)
				continue
			}
			return Token{Kind: KindBase62, Range: rng}, false, nil
		case "#COMMENT":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindComment, Range: rng, Str: s}, false, nil
		case "#EMAIL", "%EMAIL":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindEmail, Range: rng, Str: s}, false, nil
		case "#URL", "%URL":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindUrl, Range: rng, Str: s}, false, nil
		case "#OCT/FP":
			return Token{Kind: KindOctFp, Range: cmdRange}, false, nil
		case "#OPTION":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindOption, Range: rng, Str: s}, false, nil
		case "#PATH_WAV":
			s, rng := l.c.NextLineTrimmed()
			if s == "" {
				return Token{}, false, l.errExpected(rng, "wav root path")
			}
			return Token{Kind: KindPathWav, Range: rng, Str: s}, false, nil
		case "#MAKER":
			s, rng := l.c.NextLineTrimmed()
			return Token{Kind: KindMaker, Range: rng, Str: s}, false, nil
		case "#MIDIFILE":
			s, rng := l.c.NextLineTrimmed()
			if s == "" {
				return Token{}, false, l.errExpected(rng, "midi filename")
			}
			return Token{Kind: KindMidiFile, Range: rng, Str: s}, false, nil
		case "#POORBGA":
			tok, rng, err := l.requireToken("one of 0, 1 or 2")
			if err != nil {
				return Token{}, false, err
			}
			mode, perr := ParsePoorMode(tok)
			if perr != nil {
				return Token{}, false, l.errExpected(rng, "one of 0, 1 or 2")
			}
			return Token{Kind: KindPoorBga, Range: rng, PoorMode: mode}, false, nil
		case "#VIDEOFILE", "#MOVIE":
			s, rng := l.c.NextLineTrimmed()
			if s == "" {
				return Token{}, false, l.errExpected(rng, "video filename")
			}
			return Token{Kind: KindVideoFile, Range: rng, Str: s}, false, nil
		}

		// id-suffix families: longest-prefix-first so #EXBMP/#EXRANK/#EXWAV
		// are not shadowed by a hypothetical #EX* catch-all.
		switch {
		case strings.HasPrefix(upper, "#WAV"):
			return l.parseWav(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#BMP"):
			return l.parseBmp(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#BPM"):
			return l.parseBpmChange(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#STOP"):
			return l.parseStop(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#SCROLL"):
			return l.parseScroll(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#SPEED"):
			return l.parseSpeed(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#EXBMP"):
			return l.parseExBmp(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#EXRANK"):
			return l.parseExRank(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#EXWAV"):
			return l.parseExWav(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#TEXT"):
			return l.parseText(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#@BGA"):
			return l.parseAtBga(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#BGA") && !strings.HasPrefix(upper, "#BGAPOOR"):
			return l.parseBga(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#CHANGEOPTION"):
			return l.parseChangeOption(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#LNOBJ"):
			return l.parseLnObj(commandTok, upper, cmdRange)
		case strings.HasPrefix(upper, "#EXT"):
			tok, err, skip := l.parseExtendedMessage(cmdRange)
			if skip {
				continue
			}
			return tok, false, err
		case isMessageLine(commandTok):
			return l.parseMessage(commandTok, cmdRange)
		case strings.HasPrefix(commandTok, "#"):
			line, rng := l.c.NextLineEntire()
			return Token{Kind: KindUnknownCommand, Range: rng, Str: commandTok + line}, false, nil
		default:
			line, rng := l.c.NextLineEntire()
			return Token{Kind: KindNotACommand, Range: rng, Str: commandTok + line}, false, nil
		}
	}
}

// idSuffix strips the given command prefix length off the original
// (case-preserved) token to recover the id portion.
func idSuffix(original, upper, prefix string) string {
	return original[len(prefix):]
}

func (l *Lexer) parseWav(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#WAV")
	s, lrng := l.c.NextLineTrimmed()
	if s == "" {
		return Token{}, false, l.errExpected(lrng, "key audio filename")
	}
	objId, err := l.requireId(id, rng)
	if err != nil {
		return Token{}, false, err
	}
	return Token{Kind: KindWav, Range: lrng, Id: objId, HasId: true, Str: s}, false, nil
}

func (l *Lexer) parseBmp(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#BMP")
	s, lrng := l.c.NextLineTrimmed()
	if s == "" {
		return Token{}, false, l.errExpected(lrng, "key audio filename")
	}
	if id == "00" {
		return Token{Kind: KindBmp, Range: lrng, HasId: false, Str: s}, false, nil
	}
	objId, err := l.requireId(id, rng)
	if err != nil {
		return Token{}, false, err
	}
	return Token{Kind: KindBmp, Range: lrng, Id: objId, HasId: true, Str: s}, false, nil
}

func (l *Lexer) parseBpmChange(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#BPM")
	tok, trng, err := l.requireToken("bpm")
	if err != nil {
		return Token{}, false, err
	}
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	return Token{Kind: KindBpmChange, Range: trng, Id: objId, HasId: true, Str: tok}, false, nil
}

func (l *Lexer) parseStop(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#STOP")
	v, trng, err := l.requireUint32("stop beats")
	if err != nil {
		return Token{}, false, err
	}
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	return Token{Kind: KindStop, Range: trng, Id: objId, HasId: true, UInt: v}, false, nil
}

func (l *Lexer) parseScroll(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#SCROLL")
	tok, trng, err := l.requireToken("scroll factor")
	if err != nil {
		return Token{}, false, err
	}
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	return Token{Kind: KindScroll, Range: trng, Id: objId, HasId: true, Str: tok}, false, nil
}

func (l *Lexer) parseSpeed(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#SPEED")
	tok, trng, err := l.requireToken("spacing factor")
	if err != nil {
		return Token{}, false, err
	}
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	return Token{Kind: KindSpeed, Range: trng, Id: objId, HasId: true, Str: tok}, false, nil
}

func (l *Lexer) parseExBmp(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#EXBMP")
	argbTok, argbRng, err := l.requireToken("argb")
	if err != nil {
		return Token{}, false, err
	}
	fileTok, _, err := l.requireToken("filename")
	if err != nil {
		return Token{}, false, err
	}
	parts := strings.Split(argbTok, ",")
	if len(parts) != 4 {
		return Token{}, false, l.errExpected(argbRng, "expected 4 comma-separated values")
	}
	names := []string{"alpha", "red", "green", "blue"}
	var vals [4]uint8
	for i, p := range parts {
		v, perr := strconv.ParseUint(p, 10, 8)
		if perr != nil {
			return Token{}, false, cursor.MakeErrAt(argbRng, "invalid %s value", names[i])
		}
		vals[i] = uint8(v)
	}
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	return Token{
		Kind: KindExBmp, Range: argbRng, Id: objId, HasId: true,
		Argb: Argb{Alpha: vals[0], Red: vals[1], Green: vals[2], Blue: vals[3]},
		Str:  fileTok,
	}, false, nil
}

func (l *Lexer) parseExRank(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#EXRANK")
	tok, trng, err := l.requireToken("one of [0,4]")
	if err != nil {
		return Token{}, false, err
	}
	judge, perr := ParseJudgeLevel(tok)
	if perr != nil {
		return Token{}, false, l.errExpected(trng, "one of [0,4]")
	}
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	return Token{Kind: KindExRank, Range: trng, Id: objId, HasId: true, Judge: judge}, false, nil
}

func (l *Lexer) parseExWav(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#EXWAV")
	pvfTok, pvfRng, err := l.requireToken("param1")
	if err != nil {
		return Token{}, false, err
	}
	pan := DefaultExWavPan()
	vol := DefaultExWavVolume()
	var freq ExWavFrequency
	hasFreq := false
	for i := 0; i < len(pvfTok); i++ {
		switch pvfTok[i] {
		case 'p':
			v, vrng, ierr := l.requireInt("pan")
			if ierr != nil {
				return Token{}, false, ierr
			}
			p, perr := NewExWavPan(v)
			if perr != nil {
				l.warn(vrng, "pan value out of range [-10000, 10000]: %d", v)
			}
			pan = p
		case 'v':
			v, vrng, ierr := l.requireInt("volume")
			if ierr != nil {
				return Token{}, false, ierr
			}
			vv, verr := NewExWavVolume(v)
			if verr != nil {
				l.warn(vrng, "volume value out of range [-10000, 0]: %d", v)
			}
			vol = vv
		case 'f':
			v, vrng, ierr := l.requireUint64("frequency")
			if ierr != nil {
				return Token{}, false, ierr
			}
			f, ferr := NewExWavFrequency(v)
			if ferr != nil {
				l.warn(vrng, "frequency value out of range [100, 100000]: %d", v)
			}
			freq = f
			hasFreq = true
		default:
			return Token{}, false, l.errExpected(pvfRng, "expected p, v or f")
		}
	}
	fileTok, _ := l.c.NextLineTrimmed()
	if fileTok == "" {
		return Token{}, false, l.errExpected(pvfRng, "filename")
	}
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	return Token{
		Kind: KindExWav, Range: pvfRng, Id: objId, HasId: true,
		Pan: pan, Volume: vol, Frequency: freq, HasFreq: hasFreq, Str: fileTok,
	}, false, nil
}

func (l *Lexer) parseText(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#TEXT")
	s, lrng := l.c.NextLineTrimmed()
	objId, err := l.requireId(id, rng)
	if err != nil {
		return Token{}, false, err
	}
	return Token{Kind: KindText, Range: lrng, Id: objId, HasId: true, Str: s}, false, nil
}

func (l *Lexer) requireGeom(what string) (int, Range, error) {
	v, rng, err := l.requireInt(what)
	return int(v), rng, err
}

func (l *Lexer) parseAtBga(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#@BGA")
	srcTok, srcRng, err := l.requireToken("source bmp")
	if err != nil {
		return Token{}, false, err
	}
	sx, _, err := l.requireGeom("sx")
	if err != nil {
		return Token{}, false, err
	}
	sy, _, err := l.requireGeom("sy")
	if err != nil {
		return Token{}, false, err
	}
	w, _, err := l.requireGeom("w")
	if err != nil {
		return Token{}, false, err
	}
	h, lrng, err := l.requireGeom("h")
	if err != nil {
		return Token{}, false, err
	}
	dx, _, err := l.requireGeom("dx")
	if err != nil {
		return Token{}, false, err
	}
	dy, lrng2, err := l.requireGeom("dy")
	if err != nil {
		return Token{}, false, err
	}
	_ = lrng
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	srcId, srcErr := l.requireId(srcTok, srcRng)
	if srcErr != nil {
		return Token{}, false, srcErr
	}
	return Token{
		Kind: KindAtBga, Range: lrng2, Id: objId, HasId: true, SourceId: srcId,
		TrimTopLeft: Point{sx, sy}, TrimSize: Size{w, h}, DrawPoint: Point{dx, dy},
	}, false, nil
}

func (l *Lexer) parseBga(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#BGA")
	srcTok, srcRng, err := l.requireToken("source bmp")
	if err != nil {
		return Token{}, false, err
	}
	x1, _, err := l.requireGeom("x1")
	if err != nil {
		return Token{}, false, err
	}
	y1, _, err := l.requireGeom("y1")
	if err != nil {
		return Token{}, false, err
	}
	x2, _, err := l.requireGeom("x2")
	if err != nil {
		return Token{}, false, err
	}
	y2, _, err := l.requireGeom("y2")
	if err != nil {
		return Token{}, false, err
	}
	dx, _, err := l.requireGeom("dx")
	if err != nil {
		return Token{}, false, err
	}
	dy, lrng, err := l.requireGeom("dy")
	if err != nil {
		return Token{}, false, err
	}
	objId, idErr := l.requireId(id, rng)
	if idErr != nil {
		return Token{}, false, idErr
	}
	srcId, srcErr := l.requireId(srcTok, srcRng)
	if srcErr != nil {
		return Token{}, false, srcErr
	}
	return Token{
		Kind: KindBga, Range: lrng, Id: objId, HasId: true, SourceId: srcId,
		TrimTopLeft: Point{x1, y1}, TrimBottomRight: Point{x2, y2}, DrawPoint: Point{dx, dy},
	}, false, nil
}

func (l *Lexer) parseChangeOption(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#CHANGEOPTION")
	s, lrng := l.c.NextLineTrimmed()
	objId, err := l.requireId(id, rng)
	if err != nil {
		return Token{}, false, err
	}
	return Token{Kind: KindChangeOption, Range: lrng, Id: objId, HasId: true, Str: s}, false, nil
}

func (l *Lexer) parseLnObj(orig, upper string, rng Range) (Token, bool, error) {
	id := idSuffix(orig, upper, "#LNOBJ")
	objId, err := l.requireId(id, rng)
	if err != nil {
		return Token{}, false, err
	}
	return Token{Kind: KindLnObj, Range: rng, Id: objId, HasId: true}, false, nil
}

// isMessageLine recognizes `#TTTCC:body` — starts with '#', 7th char ':',
// length >= 8.
func isMessageLine(s string) bool {
	return strings.HasPrefix(s, "#") && len(s) >= 8 && s[6] == ':'
}

func (l *Lexer) decomposeMessage(s string, rng Range) (Track, string, string, error) {
	trackNum, err := strconv.ParseUint(s[1:4], 10, 32)
	if err != nil {
		return 0, "", "", l.errExpected(rng, "[000-999]")
	}
	return Track(trackNum), s[4:6], s[7:], nil
}

func (l *Lexer) parseMessage(s string, rng Range) (Token, bool, error) {
	track, code, body, err := l.decomposeMessage(s, rng)
	if err != nil {
		return Token{}, false, err
	}
	ch, ok := l.parser(code)
	if !ok {
		return Token{}, false, cursor.MakeErrAt(rng, "unknown channel %q", code)
	}
	return Token{Kind: KindMessage, Range: rng, Track: track, Channel: ch, Str: body}, false, nil
}

// parseExtendedMessage handles `#EXT #XXXYY:body`. A malformed payload is
// reported as a warning and lexing continues with the next command (skip=true).
// An unknown channel code is a fatal error, as it is for a plain message line.
func (l *Lexer) parseExtendedMessage(rng Range) (Token, error, bool) {
	msgTok, msgRng, ok := l.nextToken()
	if !ok {
		return Token{}, l.errExpected(rng, "message definition"), false
	}
	if !isMessageLine(msgTok) {
		l.warn(msgRng, "unknown #EXT format: %q", msgTok)
		return Token{}, nil, true
	}
	track, code, body, err := l.decomposeMessage(msgTok, msgRng)
	if err != nil {
		l.warn(msgRng, "unknown #EXT format: %q", msgTok)
		return Token{}, nil, true
	}
	ch, chOk := l.parser(code)
	if !chOk {
		return Token{}, cursor.MakeErrAt(msgRng, "unknown channel %q", code), false
	}
	return Token{Kind: KindExtendedMessage, Range: msgRng, Track: track, Channel: ch, Str: body}, nil, false
}
