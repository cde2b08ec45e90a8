package x690

import "testing"

func TestBooleanTrueEncodesCanonical(t *testing.T) {
	var e Element
	e.SetBoolean(true)
	e.Rule = DER
	got := e.ToBytes()
	want := []byte{0x01, 0x01, 0xFF}
	if string(got) != string(want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestBooleanRoundTrip(t *testing.T) {
	for _, rule := range allRules {
		for _, v := range []bool{true, false} {
			var e Element
			e.SetBoolean(v)
			e.Rule = rule
			wire := e.ToBytes()
			got, n, err := Decode(wire, rule)
			if err != nil {
				t.Fatalf("rule=%v v=%v: unexpected error: %v", rule, v, err)
			}
			if n != len(wire) {
				t.Fatalf("rule=%v v=%v: consumed %d, want %d", rule, v, n, len(wire))
			}
			b, err := got.Boolean()
			if err != nil {
				t.Fatalf("rule=%v v=%v: decode error: %v", rule, v, err)
			}
			if b != v {
				t.Errorf("rule=%v v=%v: got %v", rule, v, b)
			}
		}
	}
}

func TestBooleanBERToleratesAnyNonzero(t *testing.T) {
	e := Element{Class: ClassUniversal, Tag: TagBoolean, Value: []byte{0x01}, Rule: BER}
	b, err := e.Boolean()
	if err != nil || !b {
		t.Errorf("got (%v, %v), want (true, nil)", b, err)
	}
}

func TestBooleanDERRejectsNonCanonical(t *testing.T) {
	e := Element{Class: ClassUniversal, Tag: TagBoolean, Value: []byte{0x01}, Rule: DER}
	_, err := e.Boolean()
	if !AsKind(err, KindUndefined) {
		t.Errorf("expected UndefinedError, got %v", err)
	}
}

func TestBooleanRejectsZeroLength(t *testing.T) {
	e := Element{Class: ClassUniversal, Tag: TagBoolean, Rule: BER}
	_, err := e.Boolean()
	if !AsKind(err, KindSize) {
		t.Errorf("expected SizeError, got %v", err)
	}
}
