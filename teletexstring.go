package x690

/*
teletexstring.go implements T61String / TeletexString (X.680 clause
37.13), treated here as an unrestricted-octet string matching common
BER producer behavior. Grounded on the teacher's t61.go.
*/

// SetT61String encodes s as a T61String.
func (e *Element) SetT61String(s string) error {
	return setRestrictedString(e, TagT61String, s, anyByte)
}

// T61String decodes the receiver as a T61String.
func (e Element) T61String() (string, error) {
	return getRestrictedString(e, TagT61String, anyByte)
}
