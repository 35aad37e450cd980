package lex

import "github.com/cbegin/bms-go/lex/channel"

// Kind discriminates a Token's variant. Go has no sum types, so Token is a
// single struct carrying only the fields relevant to Kind — callers switch
// on Kind before reading the rest.
type Kind int

const (
	KindArtist Kind = iota
	KindAtBga
	KindBanner
	KindBackBmp
	KindBase62
	KindBga
	KindBmp
	KindBpm
	KindBpmChange
	KindCase
	KindChangeOption
	KindComment
	KindDef
	KindDifficulty
	KindElse
	KindElseIf
	KindEmail
	KindEndIf
	KindEndRandom
	KindEndSwitch
	KindExtendedMessage
	KindExBmp
	KindExRank
	KindExWav
	KindGenre
	KindIf
	KindLnObj
	KindLnTypeRdm
	KindLnTypeMgq
	KindMaker
	KindMessage
	KindMidiFile
	KindNotACommand
	KindOctFp
	KindOption
	KindPathWav
	KindPlayer
	KindPlayLevel
	KindPoorBga
	KindRandom
	KindRank
	KindScroll
	KindSetRandom
	KindSetSwitch
	KindSkip
	KindSpeed
	KindStageFile
	KindStop
	KindSubArtist
	KindSubTitle
	KindSwitch
	KindText
	KindTitle
	KindTotal
	KindUnknownCommand
	KindUrl
	KindVideoFile
	KindVolWav
	KindWav
)

// Point is an (x, y) integer pair, used for BGA trim/draw geometry.
type Point struct{ X, Y int }

// Size is a (w, h) integer pair.
type Size struct{ W, H int }

// Token is a single lexed unit carrying its source range (set by the lexer)
// and the fields relevant to its Kind; unused fields are zero.
type Token struct {
	Kind  Kind
	Range Range

	// string-bearing variants (Artist, Title, comment text, filenames, raw
	// numeric literals kept as strings per the borrow-don't-parse-twice
	// policy for Bpm/Total/BpmChange/Scroll/Speed)
	Str string

	// id-bearing variants
	Id       ObjId
	HasId    bool // false only for Bmp(None, ...), the id=00 sentinel case
	SourceId ObjId

	// integer-bearing variants
	Int  int64
	UInt uint32

	// enum-bearing variants
	PlayerMode PlayerMode
	Judge      JudgeLevel
	PoorMode   PoorMode

	// geometry (AtBga/Bga)
	TrimTopLeft     Point
	TrimSize        Size
	TrimBottomRight Point
	DrawPoint       Point

	// ExWav
	Pan       ExWavPan
	Volume    ExWavVolume
	Frequency ExWavFrequency
	HasFreq   bool

	// ExBmp
	Argb Argb

	// VolWav
	Vol Volume

	// Message / ExtendedMessage
	Track   Track
	Channel channel.Channel
}

// IsControlFlowToken reports whether the token belongs to the #RANDOM/#IF or
// #SWITCH/#CASE family consumed entirely by the control-flow evaluator.
func (t Token) IsControlFlowToken() bool {
	switch t.Kind {
	case KindRandom, KindSetRandom, KindIf, KindElseIf, KindElse, KindEndIf, KindEndRandom,
		KindSwitch, KindSetSwitch, KindCase, KindDef, KindSkip, KindEndSwitch:
		return true
	default:
		return false
	}
}

// MakeIdUppercase normalizes every id-bearing field (including in-body
// message ids) to uppercase; used in the post-lex pass when the
// case-sensitivity flag is off.
func (t *Token) MakeIdUppercase() {
	switch t.Kind {
	case KindAtBga, KindBga:
		t.Id = t.Id.Uppercase()
		t.SourceId = t.SourceId.Uppercase()
	case KindBmp:
		if t.HasId {
			t.Id = t.Id.Uppercase()
		}
	case KindBpmChange, KindChangeOption, KindExBmp, KindExRank, KindExWav, KindLnObj,
		KindScroll, KindSpeed, KindStop, KindText, KindWav:
		t.Id = t.Id.Uppercase()
	case KindMessage, KindExtendedMessage:
		t.Str = uppercaseMessageIds(t.Str)
	}
}

func uppercaseMessageIds(s string) string {
	hasLower := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return s
	}
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
