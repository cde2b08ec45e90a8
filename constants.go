package x690

/*
constants.go contains ASN.1 universal tag numbers, class constants, and
shared numeric limits. Grounded on the teacher's var.go tag-name tables.
*/

// Class identifies the two-bit class field of the identifier octet.
const (
	ClassUniversal = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// ClassNames maps a Class constant to its canonical ASN.1 name.
var ClassNames = map[int]string{
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT-SPECIFIC",
	ClassPrivate:         "PRIVATE",
}

// Universal tag numbers (ITU-T X.680 clause 8).
const (
	TagEndOfContent     = 0x00
	TagBoolean          = 0x01
	TagInteger          = 0x02
	TagBitString        = 0x03
	TagOctetString      = 0x04
	TagNull             = 0x05
	TagOID              = 0x06
	TagObjectDescriptor = 0x07
	TagExternal         = 0x08
	TagReal             = 0x09
	TagEnumerated       = 0x0A
	TagEmbeddedPDV      = 0x0B
	TagUTF8String       = 0x0C
	TagRelativeOID      = 0x0D
	TagSequence         = 0x10
	TagSet              = 0x11
	TagNumericString    = 0x12
	TagPrintableString  = 0x13
	TagT61String        = 0x14
	TagVideotexString   = 0x15
	TagIA5String        = 0x16
	TagUTCTime          = 0x17
	TagGeneralizedTime  = 0x18
	TagGraphicString    = 0x19
	TagVisibleString    = 0x1A
	TagGeneralString    = 0x1B
	TagUniversalString  = 0x1C
	TagCharacterString  = 0x1D
	TagBMPString        = 0x1E
)

// TagNames maps a universal tag number to its canonical ASN.1 name.
var TagNames = map[int]string{
	TagEndOfContent:     "EOC",
	TagBoolean:          "BOOLEAN",
	TagInteger:          "INTEGER",
	TagBitString:        "BIT STRING",
	TagOctetString:      "OCTET STRING",
	TagNull:             "NULL",
	TagOID:              "OBJECT IDENTIFIER",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "EXTERNAL",
	TagReal:             "REAL",
	TagEnumerated:       "ENUMERATED",
	TagEmbeddedPDV:      "EMBEDDED PDV",
	TagUTF8String:       "UTF8String",
	TagRelativeOID:      "RELATIVE-OID",
	TagSequence:         "SEQUENCE",
	TagSet:              "SET",
	TagNumericString:    "NumericString",
	TagPrintableString:  "PrintableString",
	TagT61String:        "T61String",
	TagVideotexString:   "VideotexString",
	TagIA5String:        "IA5String",
	TagUTCTime:          "UTCTime",
	TagGeneralizedTime:  "GeneralizedTime",
	TagGraphicString:    "GraphicString",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
	TagUniversalString:  "UniversalString",
	TagCharacterString:  "CHARACTER STRING",
	TagBMPString:        "BMPString",
}

/*
NestingLimit bounds recursion depth during constructed-form
deconstruction (spec.md §3 invariant 5, §4.4, §5). Fixed at 5 to match
the reference implementation; see Element.SetNestingLimit to override
per element tree.
*/
const NestingLimit = 5

/*
CERFragmentThreshold is the content-octet count above which CER
encodes a fragmentable string type (BIT STRING, OCTET STRING,
UTF8String, and the restricted character strings) in constructed
form, split into CERFragmentThreshold-sized segments (spec.md §4.4).
*/
const CERFragmentThreshold = 1000
