package x690

/*
integer.go implements the INTEGER and ENUMERATED universal types
(X.690 clause 8.3 and 8.4), sharing one two's-complement codec since
ENUMERATED's content octets are encoded identically to INTEGER's.
Grounded on the teacher's int.go (encodeIntegerContent,
decodeIntegerContent) and enum.go.

Values are restricted to the int64 range; math/big is used only to
detect when a decoded value falls outside that range, rather than to
carry arbitrary-precision integers end to end.
*/

import "math/big"

// encodeTwosComplementMinimal returns the minimum-width two's
// complement big-endian encoding of v.
func encodeTwosComplementMinimal(v int64) []byte {
	numBytes := 1
	n := v
	for n > 127 || n < -128 {
		n >>= 8
		numBytes++
	}
	out := make([]byte, numBytes)
	for i := 0; i < numBytes; i++ {
		out[numBytes-i-1] = byte(v)
		v >>= 8
	}
	return out
}

func bigFromTwosComplement(b []byte) *big.Int {
	bi := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		full := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		bi.Sub(bi, full)
	}
	return bi
}

/*
decodeTwosComplement decodes b as a two's-complement integer, failing
with OverflowError if the represented value does not fit in int64.
Under a strict dialect (CER/DER), a redundant leading octet (present
only to satisfy some other encoder's padding convention, not to carry
sign information) is rejected with PaddingError (X.690 8.3.2).
*/
func decodeTwosComplement(b []byte, rule Rule) (int64, error) {
	if len(b) == 0 {
		return 0, newErrf(KindSize, "INTEGER: zero-length value")
	}
	if rule.strictPrimitives() && len(b) > 1 {
		if (b[0] == 0x00 && b[1]&0x80 == 0) || (b[0] == 0xFF && b[1]&0x80 != 0) {
			return 0, newErrf(KindPadding, "INTEGER: non-minimal encoding")
		}
	}
	bi := bigFromTwosComplement(b)
	if !bi.IsInt64() {
		return 0, newErrf(KindOverflow, "INTEGER: value exceeds supported 64-bit range")
	}
	return bi.Int64(), nil
}

// SetInteger encodes v as an INTEGER, applying any constraints first.
func (e *Element) SetInteger(v int64, cs ...Constraint[int64]) error {
	if err := ConstraintGroup[int64](cs).Validate(v); err != nil {
		return err
	}
	e.Class = ClassUniversal
	e.Constructed = false
	e.Tag = TagInteger
	e.Value = encodeTwosComplementMinimal(v)
	return nil
}

// Integer decodes the receiver as an INTEGER.
func (e Element) Integer() (int64, error) {
	if e.Constructed {
		return 0, newErrf(KindConstruction, "INTEGER: constructed form not permitted")
	}
	return decodeTwosComplement(e.Value, e.Rule)
}

// SetEnumerated encodes v as an ENUMERATED value; content octets are
// identical to INTEGER's, only the tag differs (X.690 8.4).
func (e *Element) SetEnumerated(v int64, cs ...Constraint[int64]) error {
	if err := ConstraintGroup[int64](cs).Validate(v); err != nil {
		return err
	}
	e.Class = ClassUniversal
	e.Constructed = false
	e.Tag = TagEnumerated
	e.Value = encodeTwosComplementMinimal(v)
	return nil
}

// Enumerated decodes the receiver as an ENUMERATED value.
func (e Element) Enumerated() (int64, error) {
	if e.Constructed {
		return 0, newErrf(KindConstruction, "ENUMERATED: constructed form not permitted")
	}
	return decodeTwosComplement(e.Value, e.Rule)
}
