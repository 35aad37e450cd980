package control

import (
	"fmt"

	"github.com/cbegin/bms-go/lex"
)

// Diagnostic is a control-flow scope issue tied to a source range. In strict
// mode it is returned as a fatal error; in relaxed mode it is collected as a
// warning and the evaluator recovers.
type Diagnostic struct {
	Range lex.Range
	Msg   string
}

func (d Diagnostic) Error() string { return d.Msg }

type frameKind int

const (
	frameRandom frameKind = iota // pass-through container; does not gate by itself
	frameIf                      // nested under a frameRandom; gates
	frameSwitch                  // gates directly; CASE/DEF/SKIP mutate it in place
)

type frame struct {
	kind       frameKind
	drawn      uint32
	active     bool
	matchedAny bool
	// orphan marks a relaxed-mode #IF opened with no enclosing random scope:
	// it and every #ELSEIF/#ELSE branch inside it stay inactive, since there
	// is no draw on the stack to match a target against.
	orphan bool
}

func (f frame) gates() bool { return f.kind != frameRandom }

// Evaluator resolves control-flow scopes over a raw token sequence.
type Evaluator struct {
	rng     Rng
	strict  bool
	stack   []frame
	diags   []Diagnostic
}

// NewEvaluator builds an Evaluator; strict=false enables the relaxed
// recovery heuristics described by Resolve's doc comment.
func NewEvaluator(rng Rng, strict bool) *Evaluator {
	return &Evaluator{rng: rng, strict: strict}
}

func (e *Evaluator) fail(rng lex.Range, format string, args ...any) error {
	d := Diagnostic{Range: rng, Msg: fmt.Sprintf(format, args...)}
	if e.strict {
		return d
	}
	e.diags = append(e.diags, d)
	return nil
}

// everyoneActive reports whether every enclosing gating frame is active,
// i.e. whether a token encountered right now should be emitted.
func (e *Evaluator) everyoneActive() bool {
	for _, f := range e.stack {
		if f.gates() && !f.active {
			return false
		}
	}
	return true
}

// topGating returns the index of the innermost gating frame (If or Switch),
// or -1 if none is open.
func (e *Evaluator) topGating() int {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if e.stack[i].gates() {
			return i
		}
	}
	return -1
}

func (e *Evaluator) topRandom() int {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if e.stack[i].kind == frameRandom {
			return i
		}
	}
	return -1
}

// Resolve consumes the raw token sequence and returns the filtered sequence
// (scope-control tokens removed, only active-branch tokens kept) along with
// any warnings.
//
// Relaxed-mode recovery: a dangling #ENDIF/#ENDRANDOM/#ENDSW closes the
// innermost frame of the matching kind anywhere on the stack (not just the
// top), closing any frames of other kinds opened above it; an #IF appearing outside
// any random scope opens a frame that stays inactive for its whole body,
// dropping its contents, since there is no principled draw on the stack to
// match its target against.
func (e *Evaluator) Resolve(tokens []lex.Token) ([]lex.Token, []Diagnostic, error) {
	out := make([]lex.Token, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case lex.KindRandom, lex.KindSetRandom:
			drawn := tok.UInt
			if tok.Kind == lex.KindRandom && e.everyoneActive() {
				// Only consult the RNG when this scope is reachable; an
				// inactive enclosing branch must not consume a draw, so
				// that RNG sequences line up with the scopes actually
				// entered at parse time.
				drawn = e.rng.NextInRange(1, tok.UInt)
			}
			e.stack = append(e.stack, frame{kind: frameRandom, drawn: drawn})
		case lex.KindEndRandom:
			if idx := e.lastOfKind(frameRandom); idx >= 0 {
				e.popAt(idx)
			} else if err := e.fail(tok.Range, "#ENDRANDOM without matching #RANDOM"); err != nil {
				return nil, e.diags, err
			}
		case lex.KindIf:
			if err := e.openIf(tok.Range, tok.UInt); err != nil {
				return nil, e.diags, err
			}
		case lex.KindElseIf:
			if err := e.branchIf(tok.Range, tok.UInt, false); err != nil {
				return nil, e.diags, err
			}
		case lex.KindElse:
			if err := e.branchIf(tok.Range, 0, true); err != nil {
				return nil, e.diags, err
			}
		case lex.KindEndIf:
			if idx := e.lastOfKind(frameIf); idx >= 0 {
				e.popAt(idx)
			} else if err := e.fail(tok.Range, "#ENDIF without matching #IF"); err != nil {
				return nil, e.diags, err
			}

		case lex.KindSwitch, lex.KindSetSwitch:
			drawn := tok.UInt
			if tok.Kind == lex.KindSwitch && e.everyoneActive() {
				drawn = e.rng.NextInRange(1, tok.UInt)
			}
			e.stack = append(e.stack, frame{kind: frameSwitch, drawn: drawn})
		case lex.KindCase:
			if err := e.branchSwitch(tok.Range, tok.UInt, false); err != nil {
				return nil, e.diags, err
			}
		case lex.KindDef:
			if err := e.branchSwitch(tok.Range, 0, true); err != nil {
				return nil, e.diags, err
			}
		case lex.KindSkip:
			if idx := e.lastOfKind(frameSwitch); idx >= 0 {
				e.stack[idx].active = false
			} else if err := e.fail(tok.Range, "#SKIP outside a switch scope"); err != nil {
				return nil, e.diags, err
			}
		case lex.KindEndSwitch:
			if idx := e.lastOfKind(frameSwitch); idx >= 0 {
				e.popAt(idx)
			} else if err := e.fail(tok.Range, "#ENDSW without matching #SWITCH"); err != nil {
				return nil, e.diags, err
			}

		default:
			if e.everyoneActive() {
				out = append(out, tok)
			}
		}
	}
	if len(e.stack) > 0 {
		if err := e.fail(lex.Range{}, "unterminated control-flow scope at end of input"); err != nil {
			return nil, e.diags, err
		}
	}
	return out, e.diags, nil
}

func (e *Evaluator) lastOfKind(k frameKind) int {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if e.stack[i].kind == k {
			return i
		}
	}
	return -1
}

func (e *Evaluator) popAt(idx int) {
	e.stack = e.stack[:idx]
}

func (e *Evaluator) openIf(rng lex.Range, target uint32) error {
	parent := e.topRandom()
	if parent < 0 {
		// Relaxed recovery: no enclosing random scope means there is no
		// principled draw to match against, so the branch stays inactive
		// rather than guessing one.
		if err := e.fail(rng, "#IF outside a random scope"); err != nil {
			return err
		}
		e.stack = append(e.stack, frame{kind: frameIf, active: false, matchedAny: false, orphan: true})
		return nil
	}
	e.stack = append(e.stack, frame{kind: frameIf, active: true, matchedAny: false})
	// active is finalized below against the enclosing random's drawn value.
	randIdx := e.topRandom()
	top := len(e.stack) - 1
	e.stack[top].active = randIdx >= 0 && e.stack[randIdx].drawn == target
	if e.stack[top].active {
		e.stack[top].matchedAny = true
	}
	return nil
}

func (e *Evaluator) branchIf(rng lex.Range, target uint32, isElse bool) error {
	idx := e.lastOfKind(frameIf)
	if idx < 0 {
		kind := "#ELSEIF"
		if isElse {
			kind = "#ELSE"
		}
		return e.fail(rng, "%s outside an if scope", kind)
	}
	if e.stack[idx].orphan {
		return nil
	}
	randIdx := e.topRandomBelow(idx)
	if e.stack[idx].matchedAny {
		e.stack[idx].active = false
		return nil
	}
	if isElse {
		e.stack[idx].active = true
		e.stack[idx].matchedAny = true
		return nil
	}
	active := randIdx >= 0 && e.stack[randIdx].drawn == target
	e.stack[idx].active = active
	if active {
		e.stack[idx].matchedAny = true
	}
	return nil
}

func (e *Evaluator) topRandomBelow(idx int) int {
	for i := idx - 1; i >= 0; i-- {
		if e.stack[i].kind == frameRandom {
			return i
		}
	}
	return -1
}

func (e *Evaluator) branchSwitch(rng lex.Range, target uint32, isDef bool) error {
	idx := e.lastOfKind(frameSwitch)
	if idx < 0 {
		kind := "#CASE"
		if isDef {
			kind = "#DEF"
		}
		return e.fail(rng, "%s outside a switch scope", kind)
	}
	f := &e.stack[idx]
	if f.active {
		// Falling through from a previous unskipped case/def: stays active.
		return nil
	}
	if isDef {
		f.active = !f.matchedAny
		return nil
	}
	if f.drawn == target {
		f.active = true
		f.matchedAny = true
	}
	return nil
}
