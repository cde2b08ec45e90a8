package x690

/*
boolean.go implements the BOOLEAN universal type (X.690 clause 8.2).
Grounded on the teacher's bool.go.
*/

// SetBoolean encodes v as a BOOLEAN, always using the canonical
// octets 0x00 (false) / 0xFF (true) regardless of dialect.
func (e *Element) SetBoolean(v bool) {
	e.Class = ClassUniversal
	e.Constructed = false
	e.Tag = TagBoolean
	if v {
		e.Value = []byte{0xFF}
	} else {
		e.Value = []byte{0x00}
	}
}

/*
Boolean decodes the receiver as a BOOLEAN. BER accepts any single
octet, treating every nonzero value as true; CER and DER require the
canonical 0x00/0xFF octets (X.690 11.1).
*/
func (e Element) Boolean() (bool, error) {
	if e.Constructed {
		return false, newErrf(KindConstruction, "BOOLEAN: constructed form not permitted")
	}
	if len(e.Value) != 1 {
		return false, newErrf(KindSize, "BOOLEAN: value must be exactly one octet")
	}
	b := e.Value[0]
	if e.Rule.strictPrimitives() && b != 0x00 && b != 0xFF {
		return false, newErrf(KindUndefined, "BOOLEAN: non-canonical octet under strict dialect")
	}
	return b != 0x00, nil
}
