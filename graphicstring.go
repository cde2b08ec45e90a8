package x690

/*
graphicstring.go implements GraphicString (X.680 clause 37.9): any
graphic character, no control codes. Grounded on the teacher's gs.go.
*/

// SetGraphicString encodes s as a GraphicString.
func (e *Element) SetGraphicString(s string) error {
	return setRestrictedString(e, TagGraphicString, s, isGraphic)
}

// GraphicString decodes the receiver as a GraphicString.
func (e Element) GraphicString() (string, error) {
	return getRestrictedString(e, TagGraphicString, isGraphic)
}
