package x690

import "testing"

func TestObjectIdentifierConcreteEncoding(t *testing.T) {
	var e Element
	if err := e.SetObjectIdentifier(ObjectIdentifier{2, 999, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Rule = DER
	got := e.ToBytes()
	want := []byte{0x06, 0x03, 0x88, 0x37, 0x03}
	if string(got) != string(want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestObjectIdentifierRoundTrip(t *testing.T) {
	oids := []ObjectIdentifier{
		{0, 0},
		{1, 2, 840, 10045, 2},
		{2, 999, 3},
	}
	for _, oid := range oids {
		var e Element
		if err := e.SetObjectIdentifier(oid); err != nil {
			t.Fatalf("oid=%v: unexpected error: %v", oid, err)
		}
		wire := e.ToBytes()
		got, _, err := Decode(wire, BER)
		if err != nil {
			t.Fatalf("oid=%v: decode error: %v", oid, err)
		}
		dv, err := got.ObjectIdentifier()
		if err != nil {
			t.Fatalf("oid=%v: ObjectIdentifier() error: %v", oid, err)
		}
		if !dv.Equal(oid) {
			t.Errorf("got %v, want %v", dv, oid)
		}
	}
}

func TestObjectIdentifierString(t *testing.T) {
	oid := ObjectIdentifier{1, 2, 840, 10045, 2}
	want := "1.2.840.10045.2"
	if oid.String() != want {
		t.Errorf("got %q, want %q", oid.String(), want)
	}
}

func TestObjectIdentifierRejectsZeroLength(t *testing.T) {
	e := Element{Class: ClassUniversal, Tag: TagOID, Rule: BER}
	_, err := e.ObjectIdentifier()
	if !AsKind(err, KindSize) {
		t.Errorf("expected SizeError, got %v", err)
	}
}

func TestRelativeOIDRoundTrip(t *testing.T) {
	var e Element
	if err := e.SetRelativeOID(ObjectIdentifier{8571, 3, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wire := e.ToBytes()
	got, _, err := Decode(wire, BER)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	dv, err := got.RelativeOID()
	if err != nil || !dv.Equal(ObjectIdentifier{8571, 3, 2}) {
		t.Errorf("got (%v, %v)", dv, err)
	}
}
