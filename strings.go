package x690

/*
strings.go holds the shared encode/decode/fragment plumbing used by
every restricted character string type (NumericString, PrintableString,
IA5String, GraphicString, VisibleString, GeneralString,
ObjectDescriptor, T61String). UTF8String does not use it (see
utf8string.go). Each of these types
stores its content as a one-octet-per-character string and differs
only in its tag and its permitted character set, so the machinery
lives here once. Grounded on the teacher's per-type files (ns.go,
ps.go, ia5.go, gs.go, vs.go, gen.go, od.go, t61.go, utf8.go).
*/

func setRestrictedString(e *Element, tag int, s string, allowed func(byte) bool) error {
	for i := 0; i < len(s); i++ {
		if !allowed(s[i]) {
			return newErrf(KindCharacters, TagNames[tag], ": character outside permitted set")
		}
	}
	el := fragmentEncode(ClassUniversal, tag, []byte(s), e.Rule)
	e.Class, e.Constructed, e.Tag, e.Value = el.Class, el.Constructed, el.Tag, el.Value
	return nil
}

func getRestrictedString(e Element, tag int, allowed func(byte) bool) (string, error) {
	raw, err := deconstruct(e, ClassUniversal, tag)
	if err != nil {
		return "", err
	}
	for i := 0; i < len(raw); i++ {
		if !allowed(raw[i]) {
			return "", newErrf(KindCharacters, TagNames[tag], ": character outside permitted set")
		}
	}
	return string(raw), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isVisibleASCII(b byte) bool { return b >= 0x20 && b <= 0x7E }

func isIA5(b byte) bool { return b <= 0x7F }

func isGraphic(b byte) bool { return b >= 0x20 && b <= 0x7E }

func anyByte(b byte) bool { return true }
