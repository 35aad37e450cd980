package assemble

import (
	"sort"

	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

// NotesProcessor decodes the Bgm and Note channels into placed objects.
// #LNOBJ tail-linking is applied afterwards by ApplyLnObj, once every
// Message token has been seen — the preceding object in a lane can live in
// an earlier measure than the one declaring the id, so it cannot be
// resolved one token at a time.
func NotesProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	if tok.Kind == lex.KindLnObj {
		sc.LnObj = tok.Id
		sc.LnObjSet = true
		return nil
	}
	if tok.Kind != lex.KindMessage && tok.Kind != lex.KindExtendedMessage {
		return nil
	}
	switch tok.Channel.Kind {
	case channel.Bgm:
		warnings, cells := parseObjIds(tok.Track, tok.Str, tok.Range)
		for _, c := range cells {
			sc.Bgm = append(sc.Bgm, Note{Time: c.Time, Id: c.Id})
		}
		return warnings
	case channel.Note:
		warnings, cells := parseObjIds(tok.Track, tok.Str, tok.Range)
		for _, c := range cells {
			sc.Notes = append(sc.Notes, Note{
				Time: c.Time, Side: tok.Channel.Side, Key: tok.Channel.Key,
				Kind: tok.Channel.NoteKind, Id: c.Id,
			})
		}
		return warnings
	}
	return nil
}

type laneKey struct {
	side lex.PlayerSide
	key  lex.Key
}

// ApplyLnObj rewrites the note immediately preceding each object whose id
// equals the declared #LNOBJ, within the same lane, into a long-note start.
// The grammar demands this relationship — it is the one case where an
// object's meaning depends on another object's position, rather than the
// bare id/time/channel triple every other command produces.
func ApplyLnObj(sc *Score) {
	if !sc.LnObjSet {
		return
	}
	lanes := map[laneKey][]int{}
	for i, n := range sc.Notes {
		k := laneKey{n.Side, n.Key}
		lanes[k] = append(lanes[k], i)
	}
	for _, idxs := range lanes {
		sort.Slice(idxs, func(a, b int) bool { return sc.Notes[idxs[a]].Time.Less(sc.Notes[idxs[b]].Time) })
		for pos, idx := range idxs {
			if sc.Notes[idx].Id != sc.LnObj {
				continue
			}
			if pos == 0 {
				continue
			}
			prev := idxs[pos-1]
			sc.Notes[prev].Kind = lex.NoteLong
		}
	}
}
