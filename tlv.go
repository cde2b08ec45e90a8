package x690

/*
tlv.go implements the self-delimiting tag-length-value record at the
heart of X.690 (spec.md §4.1). Grounded on the teacher's tlv.go (TLV,
encodeTLV) and pdu.go (getTLV, parseBody, parseFullBytes).
*/

// TLV is the raw, rule-tagged tag/length/value record produced by
// readTLV and consumed by writeTLV.
type TLV struct {
	Class    int
	Tag      int
	Compound bool
	Length   int // -1 means indefinite
	Value    []byte
	Rule     Rule
}

// Eq reports whether t and o have the same class, tag, construction,
// and rule; Length is also compared when length is true. Value is
// never compared.
func (t TLV) Eq(o TLV, length ...bool) bool {
	match := t.Rule == o.Rule && t.Compound == o.Compound &&
		t.Class == o.Class && t.Tag == o.Tag
	if match && len(length) > 0 && length[0] {
		match = t.Length == o.Length
	}
	return match
}

func (t TLV) String() string {
	return "{Rule:" + t.Rule.String() +
		", Class:" + ClassNames[t.Class] +
		", Tag:" + itoaSimple(t.Tag) +
		", Compound:" + boolStr(t.Compound) +
		", Length:" + itoaSimple(t.Length) + "}"
}

/*
readTLV parses exactly one TLV starting at buf[off:]. It returns the
parsed record and the total number of octets consumed (identifier +
length + value, including the trailing end-of-contents marker for an
indefinite-length element).

Enforces spec.md §4.1 step 3-4: indefinite length is rejected unless
the element is constructed and the dialect allows it; definite-length
value ranges are bounds-checked against buf before allocation.
*/
func readTLV(buf []byte, off int, rule Rule) (tlv TLV, consumed int, err error) {
	if off >= len(buf) {
		return TLV{}, 0, newErrf(KindTruncation, rule.String(), ": no data available at offset")
	}
	sub := buf[off:]

	class, err := identifierClass(sub)
	if err != nil {
		return TLV{}, 0, err
	}
	compound, _ := identifierConstructed(sub)
	tag, idLen, err := identifierTag(sub)
	if err != nil {
		return TLV{}, 0, err
	}

	if idLen >= len(sub) {
		return TLV{}, 0, ErrTruncation
	}
	length, lenLen, err := decodeLength(sub[idLen:])
	if err != nil {
		return TLV{}, 0, err
	}

	if length == -1 {
		if !compound {
			return TLV{}, 0, newErrf(KindConstruction, "indefinite length on primitive element")
		}
		if !rule.allowsIndefinite() {
			return TLV{}, 0, newErrf(KindUndefined, rule.String(), " forbids indefinite length")
		}
	} else if rule == DER {
		if lenLen > 1 && length < 0x80 {
			return TLV{}, 0, newErrf(KindUndefined, "DER: non-minimal length encoding")
		}
	}

	start := idLen + lenLen
	if length >= 0 {
		end := start + length
		if end > len(sub) {
			return TLV{}, 0, ErrTruncation
		}
		tlv = TLV{Class: class, Tag: tag, Compound: compound, Length: length, Value: sub[start:end], Rule: rule}
		return tlv, end, nil
	}

	relEnd, err := findEndOfContents(sub[start:])
	if err != nil {
		return TLV{}, 0, err
	}
	tlv = TLV{Class: class, Tag: tag, Compound: compound, Length: -1, Value: sub[start : start+relEnd], Rule: rule}
	return tlv, start + relEnd + 2, nil
}

/*
writeTLV appends the encoding of t (identifier, length, value, and the
end-of-contents marker if t.Length is indefinite) to dst.
*/
func writeTLV(dst []byte, t TLV) []byte {
	dst = encodeIdentifier(dst, t.Class, t.Compound, t.Tag)

	indefinite := t.Length < 0
	if indefinite {
		if !t.Rule.allowsIndefinite() {
			panic("x690: " + t.Rule.String() + " forbids indefinite length")
		}
		dst = encodeLengthIndefinite(dst)
	} else {
		dst = encodeLengthDefiniteMinimal(dst, t.Length)
	}

	dst = append(dst, t.Value...)
	if indefinite {
		dst = append(dst, endOfContents...)
	}
	return dst
}

// headerSize returns the number of octets writeTLV would emit for the
// identifier and length of a definite-length element with the given
// tag and content length, without the value octets themselves.
func headerSize(tag, length int) int {
	size := 1
	if tag >= 31 {
		for v := tag; v > 0; v >>= 7 {
			size++
		}
	}
	size++ // at least one length octet
	if length >= 128 {
		n := 0
		for v := length; v > 0; v >>= 8 {
			n++
		}
		size += n
	}
	return size
}
