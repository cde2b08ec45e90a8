package x690

/*
bitstring.go implements the BIT STRING universal type (X.690 clause
8.6), including its constructed fragmented form under CER. Grounded on
the teacher's bs.go (parseBase2BitString, At, RightAlign) and the
shared fragmentation engine in construct.go.
*/

// BitString is a sequence of bits with an explicit trailing-bit count,
// matching X.690's "N unused bits in the last octet" representation.
type BitString struct {
	Bytes      []byte
	UnusedBits int // 0-7; meaningful only when len(Bytes) > 0
}

// Len reports the number of significant bits.
func (b BitString) Len() int {
	if len(b.Bytes) == 0 {
		return 0
	}
	return len(b.Bytes)*8 - b.UnusedBits
}

// At reports the value of the i'th bit (0-indexed, most significant
// bit of Bytes[0] first).
func (b BitString) At(i int) bool {
	if i < 0 || i >= b.Len() {
		return false
	}
	return b.Bytes[i/8]&(0x80>>uint(i%8)) != 0
}

/*
SetBitString encodes v as a BIT STRING. Under CER, content longer than
CERFragmentThreshold octets (including the unused-bits octet) is split
across constructed segments, each segment byte-aligned except the
last, which alone may carry a nonzero unused-bits count (X.690 8.6.4).
*/
func (e *Element) SetBitString(v BitString) error {
	if v.UnusedBits < 0 || v.UnusedBits > 7 {
		return newErrf(KindUndefined, "BIT STRING: unused-bits count out of range")
	}
	if len(v.Bytes) == 0 && v.UnusedBits != 0 {
		return newErrf(KindUndefined, "BIT STRING: empty value must report zero unused bits")
	}

	e.Class = ClassUniversal
	e.Tag = TagBitString

	content := make([]byte, 0, 1+len(v.Bytes))
	content = append(content, byte(v.UnusedBits))
	content = append(content, v.Bytes...)

	if !e.Rule.fragmentsStrings() || len(content) <= CERFragmentThreshold {
		e.Constructed = false
		e.Value = content
		return nil
	}

	e.Constructed = true
	e.Value = encodeFragmentedBitString(v.Bytes, v.UnusedBits, e.Rule)
	return nil
}

// encodeFragmentedBitString splits data into CERFragmentThreshold-1
// byte segments (room reserved for each segment's own unused-bits
// octet) and returns the concatenated encoding of the constructed
// child elements.
func encodeFragmentedBitString(data []byte, unusedBits int, rule Rule) []byte {
	const chunk = CERFragmentThreshold - 1
	var out []byte
	off := 0
	for off < len(data) {
		end := off + chunk
		last := end >= len(data)
		if end > len(data) {
			end = len(data)
		}
		ub := 0
		if last {
			ub = unusedBits
		}
		content := make([]byte, 0, 1+end-off)
		content = append(content, byte(ub))
		content = append(content, data[off:end]...)
		child := Element{Class: ClassUniversal, Constructed: false, Tag: TagBitString, Value: content, Rule: rule}
		out = append(out, child.ToBytes()...)
		off = end
	}
	if len(data) == 0 {
		child := Element{Class: ClassUniversal, Constructed: false, Tag: TagBitString, Value: []byte{byte(unusedBits)}, Rule: rule}
		out = append(out, child.ToBytes()...)
	}
	return out
}

// BitString decodes the receiver as a BIT STRING, reassembling any
// constructed fragments (X.690 8.6.3-8.6.4).
func (e Element) BitString() (BitString, error) {
	if !e.Constructed {
		return decodePrimitiveBitString(e.Value, e.Rule)
	}

	frags, err := collectFragments(e, ClassUniversal, TagBitString, 1, e.effectiveNestingLimit())
	if err != nil {
		return BitString{}, err
	}
	if len(frags) == 0 {
		return BitString{}, newErrf(KindConstruction, "BIT STRING: constructed value has no segments")
	}

	var data [][]byte
	finalUnused := 0
	for i, f := range frags {
		if len(f) == 0 {
			return BitString{}, newErrf(KindSize, "BIT STRING: fragment missing unused-bits octet")
		}
		ub := int(f[0])
		if ub < 0 || ub > 7 {
			return BitString{}, newErrf(KindUndefined, "BIT STRING: unused-bits count out of range")
		}
		if i < len(frags)-1 && ub != 0 {
			return BitString{}, newErrf(KindConstruction, "BIT STRING: non-final segment is not byte-aligned")
		}
		if i == len(frags)-1 {
			finalUnused = ub
		}
		data = append(data, f[1:])
	}

	return BitString{Bytes: concatFragments(data), UnusedBits: finalUnused}, nil
}

func decodePrimitiveBitString(value []byte, rule Rule) (BitString, error) {
	if len(value) == 0 {
		return BitString{}, newErrf(KindSize, "BIT STRING: missing unused-bits octet")
	}
	ub := int(value[0])
	if ub < 0 || ub > 7 {
		return BitString{}, newErrf(KindUndefined, "BIT STRING: unused-bits count out of range")
	}
	if len(value) == 1 && ub != 0 {
		return BitString{}, newErrf(KindUndefined, "BIT STRING: empty value must report zero unused bits")
	}
	data := value[1:]
	if rule.strictPrimitives() && ub > 0 && len(data) > 0 {
		mask := byte(0xFF >> uint(8-ub))
		if data[len(data)-1]&mask != 0 {
			return BitString{}, newErrf(KindPadding, "BIT STRING: unused bits are not zeroed")
		}
	}
	return BitString{Bytes: append([]byte(nil), data...), UnusedBits: ub}, nil
}
