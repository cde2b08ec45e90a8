package x690

/*
visiblestring.go implements VisibleString (X.680 clause 37.7), the
ISO 646 visible (non-control) subset of ASCII. Grounded on the
teacher's vs.go.
*/

// SetVisibleString encodes s as a VisibleString.
func (e *Element) SetVisibleString(s string) error {
	return setRestrictedString(e, TagVisibleString, s, isVisibleASCII)
}

// VisibleString decodes the receiver as a VisibleString.
func (e Element) VisibleString() (string, error) {
	return getRestrictedString(e, TagVisibleString, isVisibleASCII)
}
