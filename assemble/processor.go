package assemble

import "github.com/cbegin/bms-go/lex"

// Processor recognizes and acts on one family of tokens, mutating sc in
// place; tokens it does not own are ignored. Processors are composed by
// Run, which gives every processor a look at every token in one pass rather
// than each processor re-scanning the full stream.
type Processor func(sc *Score, ctx *ParseContext, tok lex.Token) []Warning

// Run assembles a Score from a control-flow-resolved token stream by handing
// each token to every processor in turn.
func Run(tokens []lex.Token, processors []Processor, ctx *ParseContext) (*Score, []Warning) {
	sc := NewScore()
	var warnings []Warning
	for _, tok := range tokens {
		for _, p := range processors {
			warnings = append(warnings, p(sc, ctx, tok)...)
		}
	}
	return sc, warnings
}

// CommonProcessors wires the feature set every consumer needs: the sound and
// timeline data required to play the chart back.
func CommonProcessors() []Processor {
	return []Processor{
		RepresentationProcessor,
		BmpProcessor,
		BpmProcessor,
		JudgeProcessor,
		MetadataProcessor,
		MusicInfoProcessor,
		ScrollProcessor,
		SectionLenProcessor,
		SpeedProcessor,
		SpriteProcessor,
		StopProcessor,
		VideoProcessor,
		WavProcessor,
		NotesProcessor,
	}
}

// MinorProcessors adds the remaining, less commonly needed families on top
// of CommonProcessors.
func MinorProcessors() []Processor {
	return append(CommonProcessors(),
		OptionProcessor,
		ResourcesProcessor,
		TextProcessor,
		VolumeProcessor,
	)
}
