package assemble

import "github.com/cbegin/bms-go/lex"

// Definition is the payload of a redefinable #WAV/#BMP entry — whatever
// value a processor was about to overwrite in its map.
type Definition any

// Prompter decides which of two conflicting definitions for the same id
// wins when the source declares it twice.
type Prompter interface {
	Resolve(old, new Definition) Definition
}

// AlwaysUseNewer keeps the most recently parsed definition and never warns
// on its own — matching the spec's default "later definition wins" rule.
type AlwaysUseNewer struct{}

func (AlwaysUseNewer) Resolve(old, new Definition) Definition { return new }

// WarningCollector wraps another Prompter and records one message per
// Resolve call (every call already implies a genuine duplicate, since
// callers only invoke Resolve when a prior definition exists), then
// delegates the actual choice to the wrapped Prompter.
type WarningCollector struct {
	Inner    Prompter
	messages []string
}

func NewWarningCollector(inner Prompter) *WarningCollector {
	return &WarningCollector{Inner: inner}
}

func (w *WarningCollector) Resolve(old, new Definition) Definition {
	w.messages = append(w.messages, "duplicate definition, keeping the later one")
	return w.Inner.Resolve(old, new)
}

// Drain returns and clears the messages collected since the last call.
func (w *WarningCollector) Drain() []string {
	out := w.messages
	w.messages = nil
	return out
}

// AlwaysWarn is AlwaysUseNewer wrapped in a WarningCollector — the default
// Prompter: keep the newer definition, but surface a warning every time.
func AlwaysWarn() Prompter {
	return NewWarningCollector(AlwaysUseNewer{})
}

// promptDup asks ctx's Prompter which of old/new should be kept, and
// drains any warnings the Prompter collected in the process, range-tagged
// to the token that triggered the conflict.
func promptDup(ctx *ParseContext, rng lex.Range, old, new Definition) (Definition, []Warning) {
	kept := ctx.Prompter.Resolve(old, new)
	var warnings []Warning
	if wc, ok := ctx.Prompter.(interface{ Drain() []string }); ok {
		for _, m := range wc.Drain() {
			warnings = append(warnings, warnf(rng, "%s", m))
		}
	}
	return kept, warnings
}
