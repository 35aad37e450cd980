// Package channel maps the two-character channel code of a BMS message line
// to a semantic Channel, one pure function per supported keyboard layout.
package channel

import (
	"strings"

	"github.com/cbegin/bms-go/lex"
)

// Kind distinguishes the channel's role; Note channels additionally carry
// kind/side/key.
type Kind int

const (
	BgaBase Kind = iota
	BgaLayer
	BgaPoor
	Bgm
	BpmChangeU8
	BpmChange
	ChangeOption
	SectionLen
	Stop
	Scroll
	Speed
	Note
)

// Channel is the tagged union described by the BMS message-channel grammar.
// Only Note channels populate NoteKind/Side/Key.
type Channel struct {
	Kind     Kind
	NoteKind lex.NoteKind
	Side     lex.PlayerSide
	Key      lex.Key
}

func simple(k Kind) Channel { return Channel{Kind: k} }

// readGeneral covers the channels shared by every layout.
func readGeneral(code string) (Channel, bool) {
	switch strings.ToUpper(code) {
	case "01":
		return simple(Bgm), true
	case "02":
		return simple(SectionLen), true
	case "03":
		return simple(BpmChangeU8), true
	case "08":
		return simple(BpmChange), true
	case "04":
		return simple(BgaBase), true
	case "06":
		return simple(BgaPoor), true
	case "07":
		return simple(BgaLayer), true
	case "09":
		return simple(Stop), true
	case "SC":
		return simple(Scroll), true
	case "SP":
		return simple(Speed), true
	default:
		return Channel{}, false
	}
}

func noteKindGeneral(c byte) (lex.NoteKind, lex.PlayerSide, bool) {
	switch c {
	case '1':
		return lex.NoteVisible, lex.Player1, true
	case '2':
		return lex.NoteVisible, lex.Player2, true
	case '3':
		return lex.NoteInvisible, lex.Player1, true
	case '4':
		return lex.NoteInvisible, lex.Player2, true
	case '5':
		return lex.NoteLong, lex.Player1, true
	case '6':
		return lex.NoteLong, lex.Player2, true
	case 'D':
		return lex.NoteLandmine, lex.Player1, true
	case 'E':
		return lex.NoteLandmine, lex.Player2, true
	default:
		return 0, 0, false
	}
}

// keyBeat maps the second character for Beat 5K/7K/10K/14K.
func keyBeat(c byte) (lex.Key, bool) {
	switch c {
	case '1':
		return lex.Key1, true
	case '2':
		return lex.Key2, true
	case '3':
		return lex.Key3, true
	case '4':
		return lex.Key4, true
	case '5':
		return lex.Key5, true
	case '6':
		return lex.Scratch, true
	case '7':
		return lex.FreeZone, true
	case '8':
		return lex.Key6, true
	case '9':
		return lex.Key7, true
	default:
		return 0, false
	}
}

// keyPmsBmeType maps the second character for PMS BME-type (9K, 2 players).
func keyPmsBmeType(c byte) (lex.Key, bool) {
	switch c {
	case '1':
		return lex.Key1, true
	case '2':
		return lex.Key2, true
	case '3':
		return lex.Key3, true
	case '4':
		return lex.Key4, true
	case '5':
		return lex.Key5, true
	case '6':
		return lex.Key8, true
	case '7':
		return lex.Key9, true
	case '8':
		return lex.Key6, true
	case '9':
		return lex.Key7, true
	default:
		return 0, false
	}
}

func note(kind lex.NoteKind, side lex.PlayerSide, key lex.Key) Channel {
	return Channel{Kind: Note, NoteKind: kind, Side: side, Key: key}
}

func twoBytes(code string) (byte, byte, bool) {
	if len(code) != 2 {
		return 0, 0, false
	}
	return code[0], code[1], true
}

// ReadBeat handles Beat 5K/7K/10K/14K.
func ReadBeat(code string) (Channel, bool) {
	if ch, ok := readGeneral(code); ok {
		return ch, true
	}
	c0, c1, ok := twoBytes(code)
	if !ok {
		return Channel{}, false
	}
	kind, side, ok := noteKindGeneral(c0)
	if !ok {
		return Channel{}, false
	}
	key, ok := keyBeat(c1)
	if !ok {
		return Channel{}, false
	}
	return note(kind, side, key), true
}

// ReadPmsBmeType handles PMS BME-type (9K, 2 players).
func ReadPmsBmeType(code string) (Channel, bool) {
	if ch, ok := readGeneral(code); ok {
		return ch, true
	}
	c0, c1, ok := twoBytes(code)
	if !ok {
		return Channel{}, false
	}
	kind, side, ok := noteKindGeneral(c0)
	if !ok {
		return Channel{}, false
	}
	key, ok := keyPmsBmeType(c1)
	if !ok {
		return Channel{}, false
	}
	return note(kind, side, key), true
}

// ReadPms handles PMS, folding Player2 BME keys into extra Player1 keys.
func ReadPms(code string) (Channel, bool) {
	if ch, ok := readGeneral(code); ok {
		return ch, true
	}
	c0, c1, ok := twoBytes(code)
	if !ok {
		return Channel{}, false
	}
	kind, side, ok := noteKindGeneral(c0)
	if !ok {
		return Channel{}, false
	}
	bmeKey, ok := keyPmsBmeType(c1)
	if !ok {
		return Channel{}, false
	}
	var key lex.Key
	switch {
	case side == lex.Player1 && (bmeKey == lex.Key1 || bmeKey == lex.Key2 || bmeKey == lex.Key3 || bmeKey == lex.Key4 || bmeKey == lex.Key5):
		key = bmeKey
	case side == lex.Player2 && bmeKey == lex.Key2:
		key = lex.Key6
	case side == lex.Player2 && bmeKey == lex.Key3:
		key = lex.Key7
	case side == lex.Player2 && bmeKey == lex.Key4:
		key = lex.Key8
	case side == lex.Player2 && bmeKey == lex.Key5:
		key = lex.Key9
	default:
		return Channel{}, false
	}
	return note(kind, lex.Player1, key), true
}

// ReadBeatNanasi handles Beat nanasi/angolmois, replacing FreeZone with
// FootPedal.
func ReadBeatNanasi(code string) (Channel, bool) {
	if ch, ok := readGeneral(code); ok {
		return ch, true
	}
	c0, c1, ok := twoBytes(code)
	if !ok {
		return Channel{}, false
	}
	kind, side, ok := noteKindGeneral(c0)
	if !ok {
		return Channel{}, false
	}
	bmeKey, ok := keyBeat(c1)
	if !ok {
		return Channel{}, false
	}
	var key lex.Key
	switch bmeKey {
	case lex.Key1, lex.Key2, lex.Key3, lex.Key4, lex.Key5, lex.Scratch:
		key = bmeKey
	case lex.FreeZone:
		key = lex.FootPedal
	default:
		return Channel{}, false
	}
	return note(kind, side, key), true
}

// ReadDscOctFp handles DSC & OCT/FP, remapping Player2 keys onto the
// extended Key8..Key13/FootPedal/ScratchExtra range.
func ReadDscOctFp(code string) (Channel, bool) {
	if ch, ok := readGeneral(code); ok {
		return ch, true
	}
	c0, c1, ok := twoBytes(code)
	if !ok {
		return Channel{}, false
	}
	kind, side, ok := noteKindGeneral(c0)
	if !ok {
		return Channel{}, false
	}
	bmeKey, ok := keyBeat(c1)
	if !ok {
		return Channel{}, false
	}
	var key lex.Key
	switch {
	case side == lex.Player1 && (bmeKey == lex.Key1 || bmeKey == lex.Key2 || bmeKey == lex.Key3 || bmeKey == lex.Key4 ||
		bmeKey == lex.Key5 || bmeKey == lex.Key6 || bmeKey == lex.Key7 || bmeKey == lex.Scratch):
		key = bmeKey
	case side == lex.Player2 && bmeKey == lex.Key1:
		key = lex.FootPedal
	case side == lex.Player2 && bmeKey == lex.Key2:
		key = lex.Key8
	case side == lex.Player2 && bmeKey == lex.Key3:
		key = lex.Key9
	case side == lex.Player2 && bmeKey == lex.Key4:
		key = lex.Key10
	case side == lex.Player2 && bmeKey == lex.Key5:
		key = lex.Key11
	case side == lex.Player2 && bmeKey == lex.Key6:
		key = lex.Key12
	case side == lex.Player2 && bmeKey == lex.Key7:
		key = lex.Key13
	case side == lex.Player2 && bmeKey == lex.Scratch:
		key = lex.ScratchExtra
	default:
		return Channel{}, false
	}
	return note(kind, lex.Player1, key), true
}

// Parser is the shape of a layout's channel-reading function, so the lexer
// can be parameterized by the caller's chosen keyboard layout.
type Parser func(code string) (Channel, bool)
