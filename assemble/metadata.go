package assemble

import "github.com/cbegin/bms-go/lex"

// MetadataProcessor collects the free-text identification fields: title,
// artist credits, genre, contact info, and the authoring tool comment.
func MetadataProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindGenre:
		sc.Genre = tok.Str
	case lex.KindTitle:
		sc.Title = tok.Str
	case lex.KindSubTitle:
		sc.SubTitle = tok.Str
	case lex.KindArtist:
		sc.Artist = tok.Str
	case lex.KindSubArtist:
		sc.SubArtist = tok.Str
	case lex.KindMaker:
		sc.Maker = tok.Str
	case lex.KindEmail:
		sc.Email = tok.Str
	case lex.KindUrl:
		sc.Url = tok.Str
	case lex.KindComment:
		sc.Comment = append(sc.Comment, tok.Str)
	case lex.KindPlayer:
		sc.Player = tok.PlayerMode
		sc.PlayerSet = true
	}
	return nil
}
