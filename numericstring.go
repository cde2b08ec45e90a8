package x690

/*
numericstring.go implements NumericString (X.680 clause 37.8), whose
permitted character set is the ten digits plus space. Grounded on the
teacher's ns.go.
*/

func isNumericStringChar(b byte) bool { return isDigit(b) || b == ' ' }

// SetNumericString encodes s as a NumericString.
func (e *Element) SetNumericString(s string) error {
	return setRestrictedString(e, TagNumericString, s, isNumericStringChar)
}

// NumericString decodes the receiver as a NumericString.
func (e Element) NumericString() (string, error) {
	return getRestrictedString(e, TagNumericString, isNumericStringChar)
}
