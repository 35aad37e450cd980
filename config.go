package bms

import (
	"github.com/cbegin/bms-go/assemble"
	"github.com/cbegin/bms-go/control"
	"github.com/cbegin/bms-go/lex/channel"
)

// ParseConfig configures a single Parse/ParseFile call.
type ParseConfig struct {
	layout   channel.Parser
	relaxed  bool
	minor    bool
	rng      control.Rng
	prompter assemble.Prompter
}

// Option configures a ParseConfig; see WithLayout, WithRelaxed,
// WithCommonProcessorsOnly, WithRng, and WithPrompter.
type Option func(*ParseConfig)

func defaultConfig() *ParseConfig {
	return &ParseConfig{layout: channel.ReadBeat, relaxed: false, minor: true, rng: control.SystemRng{}}
}

// WithRng overrides the random source consulted by #RANDOM/#SWITCH; tests
// use this to supply a scripted control.MockRng.
func WithRng(rng control.Rng) Option {
	return func(c *ParseConfig) { c.rng = rng }
}

// WithLayout selects the keyboard-layout channel parser. Defaults to Beat
// 5/7/10/14K (channel.ReadBeat).
func WithLayout(p channel.Parser) Option {
	return func(c *ParseConfig) { c.layout = p }
}

// WithRelaxed enables the control-flow evaluator's relaxed recovery mode
// instead of failing fast on unbalanced #RANDOM/#SWITCH scopes.
func WithRelaxed(relaxed bool) Option {
	return func(c *ParseConfig) { c.relaxed = relaxed }
}

// WithPrompter overrides how duplicate #WAV/#BMP definitions are resolved.
// Defaults to assemble.AlwaysWarn (keep the newer definition, always warn).
func WithPrompter(p assemble.Prompter) Option {
	return func(c *ParseConfig) { c.prompter = p }
}

// WithCommonProcessorsOnly restricts assembly to assemble.CommonProcessors,
// skipping #OPTION/#CHANGEOPTION, #PATH_WAV/#MIDIFILE/#OCT-FP, #TEXT, and
// #VOLWAV for a caller that only needs the playable chart.
func WithCommonProcessorsOnly() Option {
	return func(c *ParseConfig) { c.minor = false }
}

// LayoutByName resolves one of the --layout flag values bmsdump accepts.
func LayoutByName(name string) (channel.Parser, bool) {
	switch name {
	case "beat":
		return channel.ReadBeat, true
	case "pms":
		return channel.ReadPms, true
	case "pms-bme":
		return channel.ReadPmsBmeType, true
	case "nanasi":
		return channel.ReadBeatNanasi, true
	case "dsc-oct-fp":
		return channel.ReadDscOctFp, true
	default:
		return nil, false
	}
}
