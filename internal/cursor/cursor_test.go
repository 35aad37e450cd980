package cursor

import (
	"testing"
	"unsafe"
)

func TestNextTokenSkipsWhitespace(t *testing.T) {
	c := New("  #WAV01 foo.wav\n#WAV02 bar.wav")
	tok, rng, ok := c.NextToken()
	if !ok || tok != "#WAV01" {
		t.Fatalf("got %q ok=%v", tok, ok)
	}
	if rng.Start != 2 || rng.End != 8 {
		t.Fatalf("unexpected range %+v", rng)
	}
	tok, _, ok = c.NextToken()
	if !ok || tok != "foo.wav" {
		t.Fatalf("got %q ok=%v", tok, ok)
	}
}

func TestNextTokenEndOfInput(t *testing.T) {
	c := New("   \t\n  ")
	_, _, ok := c.NextToken()
	if ok {
		t.Fatalf("expected no token at end of input")
	}
}

func TestNextLineTrimmed(t *testing.T) {
	c := New("#BANNER  banner.png  \n#NEXT")
	c.NextToken() // consume "#BANNER"
	rest, _ := c.NextLineTrimmed()
	if rest != "banner.png" {
		t.Fatalf("got %q", rest)
	}
	tok, _, ok := c.NextToken()
	if !ok || tok != "#NEXT" {
		t.Fatalf("expected to continue on next line, got %q", tok)
	}
}

func TestNextLineEntirePreservesWhitespace(t *testing.T) {
	c := New("#BANNER  banner.png  \n")
	c.NextToken()
	rest, _ := c.NextLineEntire()
	if rest != "  banner.png  " {
		t.Fatalf("got %q", rest)
	}
}

func TestTokensAreSlicesNotCopies(t *testing.T) {
	src := "#WAV01 foo.wav"
	c := New(src)
	tok, _, _ := c.NextToken()
	if &tok == nil {
		t.Fatal("unreachable")
	}
	// The token must equal the first six bytes of src and start at the same
	// address as src, i.e. share its storage rather than being a copy.
	if tok != src[:6] {
		t.Fatalf("expected token to equal slice of source, got %q", tok)
	}
	if unsafe.StringData(tok) != unsafe.StringData(src) {
		t.Fatal("expected token to share storage with the source")
	}
}

func TestDoneAndOffset(t *testing.T) {
	c := New("ab")
	if c.Done() {
		t.Fatal("expected not done")
	}
	c.NextToken()
	if !c.Done() {
		t.Fatal("expected done after consuming only token")
	}
	if c.Offset() != 2 {
		t.Fatalf("offset = %d", c.Offset())
	}
}
