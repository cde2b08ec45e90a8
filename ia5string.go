package x690

/*
ia5string.go implements IA5String (X.680 clause 37.6), the full
7-bit ASCII repertoire. Grounded on the teacher's ia5.go.
*/

// SetIA5String encodes s as an IA5String.
func (e *Element) SetIA5String(s string) error {
	return setRestrictedString(e, TagIA5String, s, isIA5)
}

// IA5String decodes the receiver as an IA5String.
func (e Element) IA5String() (string, error) {
	return getRestrictedString(e, TagIA5String, isIA5)
}
