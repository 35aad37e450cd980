package control

import (
	"testing"

	"github.com/cbegin/bms-go/lex"
)

func tok(kind lex.Kind, uint32v uint32) lex.Token {
	return lex.Token{Kind: kind, UInt: uint32v}
}

func msg(body string) lex.Token {
	return lex.Token{Kind: lex.KindMessage, Str: body}
}

// buildNestedRandomTokens mirrors the fixture:
//
//	#RANDOM 2
//	  #IF 1
//	    msg(A)
//	    #RANDOM 2
//	      #IF 1
//	        msg(B)
//	      #ENDIF
//	      #IF 2
//	        msg(C)
//	      #ENDIF
//	    #ENDRANDOM
//	  #ENDIF
//	  #IF 2
//	    msg(D)
//	  #ENDIF
//	#ENDRANDOM
//	msg(E)
func buildNestedRandomTokens() []lex.Token {
	return []lex.Token{
		msg("outer-bgm"),
		tok(lex.KindRandom, 2),
		tok(lex.KindIf, 1),
		msg("A"),
		tok(lex.KindRandom, 2),
		tok(lex.KindIf, 1),
		msg("B"),
		tok(lex.KindEndIf, 0),
		tok(lex.KindIf, 2),
		msg("C"),
		tok(lex.KindEndIf, 0),
		tok(lex.KindEndRandom, 0),
		tok(lex.KindEndIf, 0),
		tok(lex.KindIf, 2),
		msg("D"),
		tok(lex.KindEndIf, 0),
		tok(lex.KindEndRandom, 0),
		msg("E"),
	}
}

func bodies(tokens []lex.Token) []string {
	var out []string
	for _, t := range tokens {
		if t.Kind == lex.KindMessage {
			out = append(out, t.Str)
		}
	}
	return out
}

func TestNestedRandomDraw1(t *testing.T) {
	e := NewEvaluator(NewMockRng(1), true)
	out, _, err := e.Resolve(buildNestedRandomTokens())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got := bodies(out)
	want := []string{"outer-bgm", "A", "B", "E"}
	assertStringsEqual(t, got, want)
}

func TestNestedRandomDraw1Then2(t *testing.T) {
	e := NewEvaluator(NewMockRng(1, 2), true)
	out, _, err := e.Resolve(buildNestedRandomTokens())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got := bodies(out)
	want := []string{"outer-bgm", "A", "C", "E"}
	assertStringsEqual(t, got, want)
}

func TestNestedRandomDraw2(t *testing.T) {
	e := NewEvaluator(NewMockRng(2), true)
	out, _, err := e.Resolve(buildNestedRandomTokens())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got := bodies(out)
	want := []string{"outer-bgm", "D", "E"}
	assertStringsEqual(t, got, want)
}

func assertStringsEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestStrictModeFatalOnUnbalancedScope(t *testing.T) {
	e := NewEvaluator(NewMockRng(), true)
	_, _, err := e.Resolve([]lex.Token{tok(lex.KindEndIf, 0)})
	if err == nil {
		t.Fatal("expected fatal error in strict mode")
	}
}

func TestRelaxedModeRecoversWithWarning(t *testing.T) {
	e := NewEvaluator(NewMockRng(), false)
	out, diags, err := e.Resolve([]lex.Token{tok(lex.KindEndIf, 0), msg("still-here")})
	if err != nil {
		t.Fatalf("relaxed mode should not fail: %v", err)
	}
	if len(diags) == 0 {
		t.Fatal("expected a recorded diagnostic")
	}
	if len(bodies(out)) != 1 {
		t.Fatalf("expected the message to pass through, got %v", out)
	}
}

func TestRelaxedModeDropsIfOutsideRandomScope(t *testing.T) {
	e := NewEvaluator(NewMockRng(), false)
	tokens := []lex.Token{
		msg("before"),
		tok(lex.KindIf, 1),
		msg("inside"),
		tok(lex.KindEndIf, 0),
		msg("after"),
	}
	out, diags, err := e.Resolve(tokens)
	if err != nil {
		t.Fatalf("relaxed mode should not fail: %v", err)
	}
	if len(diags) == 0 {
		t.Fatal("expected a recorded diagnostic")
	}
	got := bodies(out)
	want := []string{"before", "after"}
	assertStringsEqual(t, got, want)
}

func TestRelaxedModeDropsIfElseOutsideRandomScope(t *testing.T) {
	e := NewEvaluator(NewMockRng(), false)
	tokens := []lex.Token{
		tok(lex.KindIf, 1),
		msg("if-body"),
		tok(lex.KindElse, 0),
		msg("else-body"),
		tok(lex.KindEndIf, 0),
	}
	out, _, err := e.Resolve(tokens)
	if err != nil {
		t.Fatalf("relaxed mode should not fail: %v", err)
	}
	// Orphan #IF stays inactive for its entire body, including any #ELSE.
	if len(bodies(out)) != 0 {
		t.Fatalf("expected the whole orphan if/else to be dropped, got %v", out)
	}
}

func TestSwitchFallthrough(t *testing.T) {
	tokens := []lex.Token{
		tok(lex.KindSwitch, 2),
		tok(lex.KindCase, 1),
		msg("case1"),
		tok(lex.KindCase, 2),
		msg("case2"),
		tok(lex.KindSkip, 0),
		tok(lex.KindDef, 0),
		msg("def"),
		tok(lex.KindEndSwitch, 0),
	}
	e := NewEvaluator(NewMockRng(1), true)
	out, _, err := e.Resolve(tokens)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	// case1 (k=1==drawn) has no #SKIP before the next #CASE, so it falls
	// through into case2's body as well.
	got := bodies(out)
	want := []string{"case1", "case2"}
	assertStringsEqual(t, got, want)
}

func TestSwitchDefFallback(t *testing.T) {
	tokens := []lex.Token{
		tok(lex.KindSwitch, 3),
		tok(lex.KindCase, 1),
		msg("case1"),
		tok(lex.KindSkip, 0),
		tok(lex.KindDef, 0),
		msg("def"),
		tok(lex.KindEndSwitch, 0),
	}
	e := NewEvaluator(NewMockRng(2), true)
	out, _, err := e.Resolve(tokens)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got := bodies(out)
	want := []string{"def"}
	assertStringsEqual(t, got, want)
}
