package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

func lexAll(t *testing.T, src string) []lex.Token {
	t.Helper()
	l := lex.NewLexer(src, channel.ReadBeat)
	tokens, _, err := l.Lex()
	require.NoError(t, err)
	return tokens
}

func TestAtBgaGeometry(t *testing.T) {
	tokens := lexAll(t, "#@BGA01 02 1 2 3 4 5 6\n")
	require.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, lex.KindAtBga, tok.Kind)
	assert.Equal(t, "01", tok.Id.String())
	assert.Equal(t, "02", tok.SourceId.String())
	assert.Equal(t, lex.Point{X: 1, Y: 2}, tok.TrimTopLeft)
	assert.Equal(t, lex.Size{W: 3, H: 4}, tok.TrimSize)
	assert.Equal(t, lex.Point{X: 5, Y: 6}, tok.DrawPoint)
}

func TestExWavPermutationsAgree(t *testing.T) {
	a := lexAll(t, "#EXWAV01 pvf 10000 0 48000 ex.wav\n")
	b := lexAll(t, "#EXWAV01 vpf 0 10000 48000 ex.wav\n")
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].Pan, b[0].Pan)
	assert.Equal(t, a[0].Volume, b[0].Volume)
	assert.Equal(t, a[0].Frequency, b[0].Frequency)
	assert.Equal(t, int64(10000), a[0].Pan.Value())
	assert.Equal(t, int64(0), a[0].Volume.Value())
	assert.Equal(t, uint64(48000), a[0].Frequency.Value())
}

func TestExWavFrequencyOnlyLeavesDefaults(t *testing.T) {
	tokens := lexAll(t, "#EXWAV01 f 48000 ex.wav\n")
	require.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, lex.DefaultExWavPan(), tok.Pan)
	assert.Equal(t, lex.DefaultExWavVolume(), tok.Volume)
	assert.True(t, tok.HasFreq)
}

func TestExWavNegativeFrequencyIsFatal(t *testing.T) {
	l := lex.NewLexer("#EXWAV01 f -5 x.wav\n", channel.ReadBeat)
	_, _, err := l.Lex()
	require.Error(t, err)
}

func TestStageFileMisspellingAlias(t *testing.T) {
	a := lexAll(t, "#STAGEFILE a.bmp\n")
	b := lexAll(t, "#STAEGFILE a.bmp\n")
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, lex.KindStageFile, a[0].Kind)
	assert.Equal(t, lex.KindStageFile, b[0].Kind)
}
