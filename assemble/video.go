package assemble

import "github.com/cbegin/bms-go/lex"

// VideoProcessor collects the single-shot visual resources announced once
// at the header level: the stage image, banner, background bitmap, and
// opening video.
func VideoProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindStageFile:
		sc.StageFile = tok.Str
	case lex.KindBanner:
		sc.Banner = tok.Str
	case lex.KindBackBmp:
		sc.BackBmp = tok.Str
	case lex.KindVideoFile:
		sc.VideoFile = tok.Str
	}
	return nil
}
