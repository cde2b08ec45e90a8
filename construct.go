package x690

/*
construct.go implements the constructed-form fragmentation and
reassembly engine shared by BIT STRING, OCTET STRING, UTF8String, and
the restricted character strings (spec.md §4.4). Grounded on the
teacher's prim.go (primitiveCheckRead's constructed-overlay branch) and
the CER fragmentation rule inherited from ber.go/cer.go.
*/

/*
collectFragments walks e's Value as an ordered list of sibling TLVs,
recursing into nested constructed elements up to limit levels deep. It
returns the leaf-level content octets in depth-first order, one slice
per leaf element. Every leaf (and every intermediate constructed
child) must carry expectedClass/expectedTag, matching X.690 8.21's
requirement that fragments of a constructed string share the string's
own tag.
*/
func collectFragments(e Element, expectedClass, expectedTag, depth, limit int) ([][]byte, error) {
	if depth > limit {
		return nil, newErrf(KindRecursion, "constructed nesting exceeds limit")
	}

	children, err := e.Children()
	if err != nil {
		return nil, err
	}
	if len(children) == 0 && len(e.Value) > 0 {
		return nil, newErrf(KindConstruction, "malformed constructed value")
	}

	var out [][]byte
	for _, c := range children {
		if c.Class != expectedClass || c.Tag != expectedTag {
			return nil, newErrf(KindConstruction, "fragment tag does not match outer element")
		}
		if c.Constructed {
			sub, err := collectFragments(c, expectedClass, expectedTag, depth+1, limit)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
			continue
		}
		out = append(out, c.Value)
	}
	return out, nil
}

// concatFragments copies frags into a single preallocated buffer,
// in order, rather than growing one incrementally (spec.md §4.4
// resource-bound requirement).
func concatFragments(frags [][]byte) []byte {
	total := 0
	for _, f := range frags {
		total += len(f)
	}
	out := make([]byte, 0, total)
	for _, f := range frags {
		out = append(out, f...)
	}
	return out
}

/*
deconstruct reassembles a constructed string-like element's full
content octets, enforcing the package nesting limit (spec.md §3
invariant 5, §4.4).
*/
func deconstruct(e Element, expectedClass, expectedTag int) ([]byte, error) {
	if !e.Constructed {
		return e.Value, nil
	}
	frags, err := collectFragments(e, expectedClass, expectedTag, 1, e.effectiveNestingLimit())
	if err != nil {
		return nil, err
	}
	return concatFragments(frags), nil
}

/*
fragmentEncode splits value into CERFragmentThreshold-sized primitive
segments and wraps them in a constructed element, for rule dialects
that fragment long string-like values (spec.md §4.4). Dialects that do
not fragment, or values at or under the threshold, are returned as a
single primitive element.
*/
func fragmentEncode(class, tag int, value []byte, rule Rule) Element {
	if !rule.fragmentsStrings() || len(value) <= CERFragmentThreshold {
		return Element{Class: class, Constructed: false, Tag: tag, Value: value, Rule: rule}
	}

	var segValue []byte
	for off := 0; off < len(value); off += CERFragmentThreshold {
		end := off + CERFragmentThreshold
		if end > len(value) {
			end = len(value)
		}
		seg := Element{Class: class, Constructed: false, Tag: tag, Value: value[off:end], Rule: rule}
		segValue = append(segValue, seg.ToBytes()...)
	}
	return Element{Class: class, Constructed: true, Tag: tag, Value: segValue, Rule: rule}
}
