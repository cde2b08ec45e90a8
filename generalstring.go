package x690

/*
generalstring.go implements GeneralString (X.680 clause 37.10), which
permits the full octet range. Grounded on the teacher's gen.go.
*/

// SetGeneralString encodes s as a GeneralString.
func (e *Element) SetGeneralString(s string) error {
	return setRestrictedString(e, TagGeneralString, s, anyByte)
}

// GeneralString decodes the receiver as a GeneralString.
func (e Element) GeneralString() (string, error) {
	return getRestrictedString(e, TagGeneralString, anyByte)
}
