package assemble

import "github.com/cbegin/bms-go/lex"

// BmpProcessor collects #BMPxx image/video definitions, refined by a later
// #EXBMPxx giving the bitmap a non-default transparency color.
func BmpProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindBmp:
		id := tok.Id
		if !tok.HasId {
			id = lex.NullObjId() // id=00: the implicit POOR BGA bitmap
		}
		next := Bmp{Path: tok.Str, Argb: lex.DefaultArgb()}
		if old, dup := sc.Bmps[id]; dup {
			kept, warnings := promptDup(ctx, tok.Range, old, next)
			sc.Bmps[id] = kept.(Bmp)
			return warnings
		}
		sc.Bmps[id] = next
	case lex.KindExBmp:
		b := sc.Bmps[tok.Id]
		b.Path = tok.Str
		b.Argb = tok.Argb
		sc.Bmps[tok.Id] = b
	}
	return nil
}
