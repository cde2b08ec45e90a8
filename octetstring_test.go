package x690

import "testing"

func TestOctetStringRoundTrip(t *testing.T) {
	for _, rule := range allRules {
		var e Element
		e.Rule = rule
		e.SetOctetString([]byte("hello, world"))
		wire := e.ToBytes()
		got, _, err := Decode(wire, rule)
		if err != nil {
			t.Fatalf("rule=%v: decode error: %v", rule, err)
		}
		v, err := got.OctetString()
		if err != nil || string(v) != "hello, world" {
			t.Errorf("rule=%v: got (%q, %v)", rule, v, err)
		}
	}
}

// TestOctetStringCERFragmentation matches spec example: a 2500-byte
// zero-filled OCTET STRING under CER fragments into three children of
// lengths 1000, 1000, 500.
func TestOctetStringCERFragmentation(t *testing.T) {
	data := make([]byte, 2500)
	var e Element
	e.Rule = CER
	e.SetOctetString(data)

	if !e.Constructed {
		t.Fatalf("expected constructed encoding above threshold")
	}
	children, err := e.Children()
	if err != nil {
		t.Fatalf("Children() error: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	wantLens := []int{1000, 1000, 500}
	for i, c := range children {
		if len(c.Value) != wantLens[i] {
			t.Errorf("child %d: length %d, want %d", i, len(c.Value), wantLens[i])
		}
	}

	got, err := e.OctetString()
	if err != nil {
		t.Fatalf("OctetString() error: %v", err)
	}
	if len(got) != len(data) {
		t.Errorf("reassembled length %d, want %d", len(got), len(data))
	}
}

func TestOctetStringBERConstructedDecode(t *testing.T) {
	seg1 := Element{Class: ClassUniversal, Tag: TagOctetString, Value: []byte("ab"), Rule: BER}
	seg2 := Element{Class: ClassUniversal, Tag: TagOctetString, Value: []byte("cd"), Rule: BER}
	outer := Element{Class: ClassUniversal, Constructed: true, Tag: TagOctetString, Rule: BER}
	outer.Value = append(seg1.ToBytes(), seg2.ToBytes()...)

	v, err := outer.OctetString()
	if err != nil || string(v) != "abcd" {
		t.Errorf("got (%q, %v), want (\"abcd\", nil)", v, err)
	}
}
