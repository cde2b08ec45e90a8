package x690

/*
utf8string.go implements UTF8String (X.690 clause 8.21, X.680 clause
37.5). Grounded on the teacher's utf8.go.
*/

import "unicode/utf8"

// SetUTF8String encodes s as a UTF8String, fragmenting under CER when
// its UTF-8 byte length exceeds CERFragmentThreshold.
func (e *Element) SetUTF8String(s string) {
	el := fragmentEncode(ClassUniversal, TagUTF8String, []byte(s), e.Rule)
	e.Class, e.Constructed, e.Tag, e.Value = el.Class, el.Constructed, el.Tag, el.Value
}

// UTF8String decodes the receiver as a UTF8String, reassembling any
// constructed fragments.
func (e Element) UTF8String() (string, error) {
	raw, err := deconstruct(e, ClassUniversal, TagUTF8String)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", newErrf(KindCharacters, "UTF8String: invalid UTF-8 sequence")
	}
	return string(raw), nil
}
