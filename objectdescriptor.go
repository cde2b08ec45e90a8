package x690

/*
objectdescriptor.go implements ObjectDescriptor (X.680 clause 37.3), a
GraphicString-valued type used to label an OBJECT IDENTIFIER.
Grounded on the teacher's od.go.
*/

// SetObjectDescriptor encodes s as an ObjectDescriptor.
func (e *Element) SetObjectDescriptor(s string) error {
	return setRestrictedString(e, TagObjectDescriptor, s, isGraphic)
}

// ObjectDescriptor decodes the receiver as an ObjectDescriptor.
func (e Element) ObjectDescriptor() (string, error) {
	return getRestrictedString(e, TagObjectDescriptor, isGraphic)
}
