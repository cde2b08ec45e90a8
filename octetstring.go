package x690

/*
octetstring.go implements the OCTET STRING universal type (X.690
clause 8.7), including its constructed fragmented form under CER.
Grounded on the teacher's oct.go and the shared fragmentation engine
in construct.go.
*/

// SetOctetString encodes v as an OCTET STRING, fragmenting under CER
// when v exceeds CERFragmentThreshold octets.
func (e *Element) SetOctetString(v []byte) {
	el := fragmentEncode(ClassUniversal, TagOctetString, v, e.Rule)
	e.Class, e.Constructed, e.Tag, e.Value = el.Class, el.Constructed, el.Tag, el.Value
}

// OctetString decodes the receiver as an OCTET STRING, reassembling
// any constructed fragments (X.690 8.7.3).
func (e Element) OctetString() ([]byte, error) {
	return deconstruct(e, ClassUniversal, TagOctetString)
}
