package assemble

import (
	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

// SpriteProcessor handles the BGA family: #POORBGA mode, #@BGAxx/#BGAxx
// trim-and-blit definitions, and the placed base/poor/layer events from
// channels 04/06/07.
func SpriteProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindPoorBga:
		sc.PoorMode = tok.PoorMode
	case lex.KindAtBga:
		sc.ExtBgas[tok.Id] = ExtBga{
			Id: tok.Id, SourceId: tok.SourceId,
			TrimTopLeft: tok.TrimTopLeft, TrimSize: tok.TrimSize, DrawPoint: tok.DrawPoint,
		}
	case lex.KindBga:
		w := tok.TrimBottomRight.X - tok.TrimTopLeft.X
		h := tok.TrimBottomRight.Y - tok.TrimTopLeft.Y
		sc.ExtBgas[tok.Id] = ExtBga{
			Id: tok.Id, SourceId: tok.SourceId,
			TrimTopLeft: tok.TrimTopLeft, TrimSize: lex.Size{W: w, H: h},
			TrimBottomRight: tok.TrimBottomRight, DrawPoint: tok.DrawPoint,
		}
	case lex.KindMessage, lex.KindExtendedMessage:
		var dest *[]BgaEvent
		switch tok.Channel.Kind {
		case channel.BgaBase:
			dest = &sc.BgaBase
		case channel.BgaLayer:
			dest = &sc.BgaLayer
		case channel.BgaPoor:
			dest = &sc.BgaPoor
		default:
			return nil
		}
		warnings, cells := parseObjIds(tok.Track, tok.Str, tok.Range)
		for _, c := range cells {
			*dest = append(*dest, BgaEvent{Time: c.Time, Id: c.Id})
		}
		return warnings
	}
	return nil
}
