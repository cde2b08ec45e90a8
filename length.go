package x690

/*
length.go implements length-octet parsing and per-dialect length
encoding (spec.md §4.1 step 3, §4.5 table). Grounded on the teacher's
pdu.go (parseLength) and ber.go/cer.go/der.go (encode*LengthInto).
*/

/*
decodeLength parses the length octet(s) starting at b[0]. Returns:
  - length >= 0 for a definite length
  - length == -1 for indefinite length (only legal for constructed
    elements; caller enforces that per spec.md §4.1 step 3)
  - n, the number of octets the length occupied

Rejects (per spec.md §4.1 step 3 / §8 negative properties):
  - the reserved length byte 0xFF (low 7 bits == 127)
  - a length-of-length greater than 4 octets
  - truncated length octets
*/
func decodeLength(b []byte) (length int, n int, err error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncation
	}

	first := b[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}

	low := int(first & 0x7F)
	if low == 0 {
		return -1, 1, nil // indefinite
	}
	if low == 127 {
		return 0, 0, newErr(KindUndefined, "reserved length byte 0xFF")
	}
	if low > 4 {
		return 0, 0, newErr(KindOverflow, "length-of-length exceeds 4 octets")
	}
	if len(b) < 1+low {
		return 0, 0, ErrTruncation
	}

	length = 0
	for i := 1; i <= low; i++ {
		length = (length << 8) | int(b[i])
	}
	return length, 1 + low, nil
}

// encodeLengthDefiniteMinimal appends the minimum-width definite-form
// length encoding of n to dst.
func encodeLengthDefiniteMinimal(dst []byte, n int) []byte {
	if n < 0 {
		panic("x690: negative length reached encoder")
	}
	if n < 128 {
		return append(dst, byte(n))
	}
	var tmp [8]byte
	i := len(tmp)
	v := n
	for v > 0 {
		i--
		tmp[i] = byte(v)
		v >>= 8
	}
	dst = append(dst, 0x80|byte(len(tmp)-i))
	return append(dst, tmp[i:]...)
}

// encodeLengthIndefinite appends the indefinite-length marker (0x80).
func encodeLengthIndefinite(dst []byte) []byte { return append(dst, 0x80) }

// endOfContents is the two-octet sentinel that closes an
// indefinite-length constructed encoding.
var endOfContents = []byte{0x00, 0x00}

/*
findEndOfContents scans b (the content octets of an indefinite-length
element, starting right after its length octet) for the end-of-contents
marker that closes the outermost container, skipping nested elements
(definite or indefinite) along the way. Returns the offset of the
marker relative to b, or a TruncationError if none is found.
*/
func findEndOfContents(b []byte) (int, error) {
	depth := 0
	i := 0
	for i < len(b) {
		if b[i] == 0x00 && i+1 < len(b) && b[i+1] == 0x00 {
			if depth == 0 {
				return i, nil
			}
			depth--
			i += 2
			continue
		}

		_, idLen, err := identifierTag(b[i:])
		if err != nil {
			return 0, err
		}
		l, lenLen, err := decodeLength(b[i+idLen:])
		if err != nil {
			return 0, err
		}
		i += idLen + lenLen
		if l == -1 {
			depth++
		} else {
			i += l
		}
	}
	return 0, ErrTruncation
}
