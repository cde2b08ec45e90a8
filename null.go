package x690

/*
null.go implements the NULL universal type (X.690 clause 8.8).
Grounded on the teacher's null.go.
*/

// SetNull encodes the receiver as NULL (zero-length primitive).
func (e *Element) SetNull() {
	e.Class = ClassUniversal
	e.Constructed = false
	e.Tag = TagNull
	e.Value = nil
}

// IsNull reports whether the receiver decodes validly as NULL.
func (e Element) IsNull() error {
	if e.Constructed {
		return newErrf(KindConstruction, "NULL: constructed form not permitted")
	}
	if len(e.Value) != 0 {
		return newErrf(KindSize, "NULL: value must be zero-length")
	}
	return nil
}
