package x690

import "testing"

// TestIndefiniteLengthOnPrimitiveRejected covers the negative property:
// indefinite length with the primitive construction bit set must fail.
func TestIndefiniteLengthOnPrimitiveRejected(t *testing.T) {
	buf := []byte{0x04, 0x80} // OCTET STRING, primitive, indefinite length
	_, _, err := readTLV(buf, 0, BER)
	if !AsKind(err, KindConstruction) {
		t.Errorf("expected ConstructionError, got %v", err)
	}
}

func TestDERRejectsIndefiniteLength(t *testing.T) {
	buf := []byte{0x30, 0x80, 0x00, 0x00} // SEQUENCE, constructed, indefinite
	_, _, err := readTLV(buf, 0, DER)
	if !AsKind(err, KindUndefined) {
		t.Errorf("expected UndefinedError, got %v", err)
	}
}

func TestDERRejectsNonMinimalLength(t *testing.T) {
	buf := []byte{0x02, 0x81, 0x01, 0x05} // INTEGER, long-form length for a value that fits short form
	_, _, err := readTLV(buf, 0, DER)
	if !AsKind(err, KindUndefined) {
		t.Errorf("expected UndefinedError, got %v", err)
	}
}

// TestConstructedStringMismatchedSubElementTag covers the negative
// property: a sub-element of a constructed string with a mismatched
// tag class or number must fail.
func TestConstructedStringMismatchedSubElementTag(t *testing.T) {
	seg1 := Element{Class: ClassUniversal, Tag: TagOctetString, Value: []byte("ab"), Rule: BER}
	seg2 := Element{Class: ClassUniversal, Tag: TagBoolean, Value: []byte{0xFF}, Rule: BER}
	outer := Element{Class: ClassUniversal, Constructed: true, Tag: TagOctetString, Rule: BER}
	outer.Value = append(seg1.ToBytes(), seg2.ToBytes()...)

	_, err := outer.OctetString()
	if !AsKind(err, KindConstruction) {
		t.Errorf("expected ConstructionError, got %v", err)
	}
}

// TestRecursionLimitEnforced covers the negative property: recursion
// depth 6 when the limit is 5 must fail with RecursionError.
// Six levels of constructed nesting (the outermost counted as depth 1)
// exceeds NestingLimit (5) and must fail with RecursionError.
func TestRecursionLimitEnforced(t *testing.T) {
	inner := Element{Class: ClassUniversal, Tag: TagOctetString, Value: []byte("x"), Rule: BER}
	for depth := 0; depth < 6; depth++ {
		inner = Element{Class: ClassUniversal, Constructed: true, Tag: TagOctetString, Value: inner.ToBytes(), Rule: BER}
	}
	_, err := inner.OctetString()
	if !AsKind(err, KindRecursion) {
		t.Errorf("expected RecursionError, got %v", err)
	}
}

// Exactly five levels of constructed nesting sits at NestingLimit and
// must still succeed.
func TestRecursionWithinLimitSucceeds(t *testing.T) {
	inner := Element{Class: ClassUniversal, Tag: TagOctetString, Value: []byte("x"), Rule: BER}
	for depth := 0; depth < 5; depth++ {
		inner = Element{Class: ClassUniversal, Constructed: true, Tag: TagOctetString, Value: inner.ToBytes(), Rule: BER}
	}
	v, err := inner.OctetString()
	if err != nil || string(v) != "x" {
		t.Errorf("got (%q, %v), want (\"x\", nil)", v, err)
	}
}

func TestTruncatedInputRejected(t *testing.T) {
	_, _, err := readTLV([]byte{0x02, 0x05, 0x01}, 0, BER)
	if !AsKind(err, KindTruncation) {
		t.Errorf("expected TruncationError, got %v", err)
	}
}
