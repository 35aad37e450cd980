// Package bms parses Be-Music Source (BMS) rhythm-game score files: the
// header commands, channel messages and the #RANDOM/#SWITCH conditional
// compilation directives that together describe a chart.
package bms

import (
	"fmt"
	"os"

	"github.com/cbegin/bms-go/assemble"
	"github.com/cbegin/bms-go/control"
	"github.com/cbegin/bms-go/lex"
)

// Result is everything a Parse call produces: the assembled chart plus every
// diagnostic collected along the way. Diagnostics never cause a nil
// Result — only the fatal error return does that.
type Result struct {
	Score    *assemble.Score
	Warnings []lex.Warning
	Diags    []control.Diagnostic
	AsmWarns []assemble.Warning
}

// Parse lexes, resolves, and assembles src into a Result.
func Parse(src string, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	lexer := lex.NewLexer(src, cfg.layout)
	tokens, warnings, err := lexer.Lex()
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	normalizeCase(tokens)

	eval := control.NewEvaluator(cfg.rng, !cfg.relaxed)
	resolved, diags, err := eval.Resolve(tokens)
	if err != nil {
		return nil, fmt.Errorf("resolve control flow: %w", err)
	}

	processors := assemble.CommonProcessors()
	if cfg.minor {
		processors = assemble.MinorProcessors()
	}
	ctx := assemble.NewParseContext()
	if cfg.prompter != nil {
		ctx.Prompter = cfg.prompter
	}
	score, asmWarns := assemble.Run(resolved, processors, ctx)
	assemble.ApplyLnObj(score)

	return &Result{Score: score, Warnings: warnings, Diags: diags, AsmWarns: asmWarns}, nil
}

// ParseFile reads path and parses its contents.
func ParseFile(path string, opts ...Option) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), opts...)
}

// normalizeCase uppercases every id-bearing token in place when the source
// never declares #BASE 62 — a global decision, since #BASE 62 may appear
// anywhere in the file and its effect is not positional.
func normalizeCase(tokens []lex.Token) {
	caseSensitive := false
	for _, t := range tokens {
		if t.Kind == lex.KindBase62 {
			caseSensitive = true
			break
		}
	}
	if caseSensitive {
		return
	}
	for i := range tokens {
		tokens[i].MakeIdUppercase()
	}
}
