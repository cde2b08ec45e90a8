package x690

/*
sequence.go implements the SEQUENCE and SET universal types' typed
accessors (X.690 clause 8.9-8.12). Construction (FromSequence,
FromSet) and SET canonical ordering (SortSetElements) live in
element.go; this file adds the decode-side validated accessors.
Grounded on the teacher's seq.go/set.go, generalized away from their
reflective struct-field walking.
*/

// Sequence decodes the receiver as a SEQUENCE, returning its ordered
// member elements.
func (e Element) Sequence() ([]Element, error) {
	if e.Class != ClassUniversal || e.Tag != TagSequence {
		return nil, newErrf(KindConstruction, "SEQUENCE: unexpected tag")
	}
	if !e.Constructed {
		return nil, newErrf(KindConstruction, "SEQUENCE: primitive form not permitted")
	}
	return e.Children()
}

/*
Set decodes the receiver as a SET, returning its member elements. CER
and DER producers are required to emit SET members ordered by
ascending tag (X.690 11.6); this accessor returns members in
wire order without re-sorting, since decode should reflect what was
actually received.
*/
func (e Element) Set() ([]Element, error) {
	if e.Class != ClassUniversal || e.Tag != TagSet {
		return nil, newErrf(KindConstruction, "SET: unexpected tag")
	}
	if !e.Constructed {
		return nil, newErrf(KindConstruction, "SET: primitive form not permitted")
	}
	return e.Children()
}
