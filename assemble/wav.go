package assemble

import "github.com/cbegin/bms-go/lex"

// WavProcessor collects #WAVxx sound definitions, refined by a later
// #EXWAVxx giving the sample a non-default pan/volume/frequency.
func WavProcessor(sc *Score, ctx *ParseContext, tok lex.Token) []Warning {
	switch tok.Kind {
	case lex.KindWav:
		next := Wav{Path: tok.Str, Volume: lex.DefaultExWavVolume(), Pan: lex.DefaultExWavPan()}
		if old, dup := sc.Wavs[tok.Id]; dup {
			kept, warnings := promptDup(ctx, tok.Range, old, next)
			sc.Wavs[tok.Id] = kept.(Wav)
			return warnings
		}
		sc.Wavs[tok.Id] = next
	case lex.KindExWav:
		w := sc.Wavs[tok.Id]
		w.Path = tok.Str
		w.Pan = tok.Pan
		w.Volume = tok.Volume
		w.Frequency = tok.Frequency
		w.HasFreq = tok.HasFreq
		sc.Wavs[tok.Id] = w
	}
	return nil
}
