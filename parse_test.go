package bms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbegin/bms-go/assemble"
	"github.com/cbegin/bms-go/control"
	"github.com/cbegin/bms-go/lex"
	"github.com/cbegin/bms-go/lex/channel"
)

func TestBase62ToggleCollapsesWithoutBase62(t *testing.T) {
	src := "#WAVaa hoge.wav\n#WAVAA fuga.wav\n"
	res, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, res.Score.Wavs, 1)
	id, _ := lex.ParseObjId("AA")
	assert.Equal(t, "fuga.wav", res.Score.Wavs[id].Path)
}

func TestDefaultPrompterWarnsOnDuplicateWav(t *testing.T) {
	src := "#WAV01 a.wav\n#WAV01 b.wav\n"
	res, err := Parse(src)
	require.NoError(t, err)
	require.NotEmpty(t, res.AsmWarns)
	assert.Regexp(t, "duplicate definition", res.AsmWarns[0].Msg)
	id, _ := lex.ParseObjId("01")
	assert.Equal(t, "b.wav", res.Score.Wavs[id].Path)
}

func TestWithPrompterOverridesDuplicateResolution(t *testing.T) {
	src := "#WAV01 a.wav\n#WAV01 b.wav\n"
	res, err := Parse(src, WithPrompter(assemble.AlwaysUseNewer{}))
	require.NoError(t, err)
	assert.Empty(t, res.AsmWarns, "AlwaysUseNewer keeps the newer value silently")
	id, _ := lex.ParseObjId("01")
	assert.Equal(t, "b.wav", res.Score.Wavs[id].Path)
}

func TestBase62ToggleKeepsBothCasesWithBase62(t *testing.T) {
	src := "#WAVaa hoge.wav\n#WAVAA fuga.wav\n#BASE 62\n"
	res, err := Parse(src)
	require.NoError(t, err)
	assert.Len(t, res.Score.Wavs, 2)
}

const nestedRandomSrc = `
        #00111:11000000

        #RANDOM 2

        #IF 1
            #00112:00220000

            #RANDOM 2

            #IF 1
                #00115:00550000
            #ENDIF

            #IF 2
                #00116:00006600
            #ENDIF

            #ENDRANDOM

        #ENDIF

        #IF 2
            #00113:00003300
        #ENDIF

        #ENDRANDOM

        #00114:00000044
`

func TestNestedRandomDraw1(t *testing.T) {
	res, err := Parse(nestedRandomSrc, WithRng(control.NewMockRng(1)))
	require.NoError(t, err)
	require.Len(t, res.Score.Notes, 4)
	want := []string{"11", "22", "55", "44"}
	for i, n := range res.Score.Notes {
		assert.Equal(t, want[i], n.Id.String())
	}
}

func TestNestedRandomDraw1Then2(t *testing.T) {
	res, err := Parse(nestedRandomSrc, WithRng(control.NewMockRng(1, 2)))
	require.NoError(t, err)
	require.Len(t, res.Score.Notes, 4)
	want := []string{"11", "22", "66", "44"}
	for i, n := range res.Score.Notes {
		assert.Equal(t, want[i], n.Id.String())
	}
}

func TestNestedRandomDraw2(t *testing.T) {
	res, err := Parse(nestedRandomSrc, WithRng(control.NewMockRng(2)))
	require.NoError(t, err)
	require.Len(t, res.Score.Notes, 3)
	want := []string{"11", "33", "44"}
	for i, n := range res.Score.Notes {
		assert.Equal(t, want[i], n.Id.String())
	}
}

func TestCommentThenNotACommand(t *testing.T) {
	src := "#Comment This is a comment\nThis is another comment\n"
	lexer := lex.NewLexer(src, channel.ReadBeat)
	tokens, _, err := lexer.Lex()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, lex.KindComment, tokens[0].Kind)
	assert.Equal(t, "This is a comment", tokens[0].Str)
	assert.Equal(t, lex.KindNotACommand, tokens[1].Kind)
	assert.Equal(t, "This is another comment", tokens[1].Str)
}

func TestExWavOutOfRangeWarnsAndContinues(t *testing.T) {
	src := "#EXWAV01 p 10001 test.wav\n#TITLE later command\n"
	res, err := ParseWithWarnings(src)
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
	assert.Regexp(t, "pan value out of range", res.Warnings[0].Msg)
	assert.Equal(t, "later command", res.Score.Title)
}

// ParseWithWarnings is a tiny helper so the out-of-range-warning test reads
// naturally; it is just Parse with the default beat layout.
func ParseWithWarnings(src string) (*Result, error) { return Parse(src) }
