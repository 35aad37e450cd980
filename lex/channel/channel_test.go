package channel

import (
	"testing"

	"github.com/cbegin/bms-go/lex"
)

func TestGeneralChannelsAcrossLayouts(t *testing.T) {
	parsers := map[string]Parser{
		"beat":         ReadBeat,
		"pms_bme_type": ReadPmsBmeType,
		"pms":          ReadPms,
		"beat_nanasi":  ReadBeatNanasi,
		"dsc_oct_fp":   ReadDscOctFp,
	}
	for name, p := range parsers {
		if _, ok := p("00"); ok {
			t.Errorf("%s: channel_parser(00) should be None", name)
		}
		ch, ok := p("01")
		if !ok || ch.Kind != Bgm {
			t.Errorf("%s: channel_parser(01) should be Some(Bgm), got %+v ok=%v", name, ch, ok)
		}
	}
}

func TestReadBeatNoteMapping(t *testing.T) {
	ch, ok := ReadBeat("16")
	if !ok || ch.Kind != Note || ch.NoteKind != lex.NoteVisible || ch.Side != lex.Player1 || ch.Key != lex.Scratch {
		t.Fatalf("got %+v ok=%v", ch, ok)
	}
	ch, ok = ReadBeat("18")
	if !ok || ch.Key != lex.Key6 {
		t.Fatalf("expected Key6, got %+v", ch)
	}
}

func TestReadPmsFoldsPlayer2(t *testing.T) {
	ch, ok := ReadPms("22")
	if !ok || ch.Side != lex.Player1 || ch.Key != lex.Key6 {
		t.Fatalf("expected folded Key6 on Player1, got %+v ok=%v", ch, ok)
	}
}

func TestReadBeatNanasiFootPedal(t *testing.T) {
	ch, ok := ReadBeatNanasi("17")
	if !ok || ch.Key != lex.FootPedal {
		t.Fatalf("expected FootPedal, got %+v ok=%v", ch, ok)
	}
}

func TestReadDscOctFpPlayer2Remap(t *testing.T) {
	ch, ok := ReadDscOctFp("22")
	if !ok || ch.Side != lex.Player1 || ch.Key != lex.Key8 {
		t.Fatalf("expected Key8, got %+v ok=%v", ch, ok)
	}
}

func TestReadDscOctFpPlayer1Passthrough(t *testing.T) {
	ch, ok := ReadDscOctFp("11")
	if !ok || ch.Side != lex.Player1 || ch.Key != lex.Key1 {
		t.Fatalf("expected Key1 passthrough, got %+v ok=%v", ch, ok)
	}
}

func TestUnmappedPairYieldsNoChannel(t *testing.T) {
	if _, ok := ReadBeat("1Z"); ok {
		t.Fatal("expected no channel for unmapped second character")
	}
}
