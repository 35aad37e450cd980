package lex

import "testing"

func TestParseObjIdRoundTrip(t *testing.T) {
	cases := []string{"00", "aa", "ZZ", "1A", "zz"}
	for _, s := range cases {
		id, err := ParseObjId(s)
		if err != nil {
			t.Fatalf("ParseObjId(%q): %v", s, err)
		}
		if id.String() != s {
			t.Fatalf("round trip: got %q want %q", id.String(), s)
		}
	}
}

func TestParseObjIdRejectsInvalid(t *testing.T) {
	for _, s := range []string{"0", "000", "0/", "#!"} {
		if _, err := ParseObjId(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestObjIdAsU16(t *testing.T) {
	id, _ := ParseObjId("01")
	if id.AsU16() != 1 {
		t.Fatalf("got %d", id.AsU16())
	}
	id, _ = ParseObjId("10")
	if id.AsU16() != 62 {
		t.Fatalf("got %d", id.AsU16())
	}
}

func TestObjIdUppercase(t *testing.T) {
	id, _ := ParseObjId("aa")
	if id.Uppercase().String() != "AA" {
		t.Fatalf("got %q", id.Uppercase().String())
	}
}

func TestNullObjId(t *testing.T) {
	if !NullObjId().IsNull() {
		t.Fatal("expected null id")
	}
	id, _ := ParseObjId("01")
	if id.IsNull() {
		t.Fatal("01 should not be null")
	}
}

func TestExWavPanRange(t *testing.T) {
	if _, err := NewExWavPan(10000); err != nil {
		t.Fatalf("10000 should be valid: %v", err)
	}
	if _, err := NewExWavPan(-10000); err != nil {
		t.Fatalf("-10000 should be valid: %v", err)
	}
	if _, err := NewExWavPan(10001); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestExWavVolumeRange(t *testing.T) {
	if _, err := NewExWavVolume(0); err != nil {
		t.Fatalf("0 should be valid: %v", err)
	}
	if _, err := NewExWavVolume(1); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestExWavFrequencyRange(t *testing.T) {
	if _, err := NewExWavFrequency(100); err != nil {
		t.Fatalf("100 should be valid: %v", err)
	}
	if _, err := NewExWavFrequency(99); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if _, err := NewExWavFrequency(100001); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestJudgeLevelFromInt(t *testing.T) {
	if JudgeLevelFromInt(0).Kind() != JudgeVeryHard {
		t.Fatal("expected VeryHard")
	}
	other := JudgeLevelFromInt(-1)
	if other.Kind() != JudgeOther || other.OtherInt() != -1 {
		t.Fatalf("expected OtherInt(-1), got %+v", other)
	}
}

func TestParsePlayerMode(t *testing.T) {
	if m, err := ParsePlayerMode("3"); err != nil || m != PlayerDouble {
		t.Fatalf("got %v %v", m, err)
	}
	if _, err := ParsePlayerMode("9"); err == nil {
		t.Fatal("expected error")
	}
}
