package x690

/*
constraint.go implements optional range/length checks. The INTEGER and
ENUMERATED setters (SetInteger, SetEnumerated) accept Constraint[int64]
values; no other setter takes constraints (spec.md §5, SPEC_FULL.md §3
domain stack). Grounded on the teacher's constr.go (Constraint,
ConstraintGroup), generalized from its named-lookup table to plain
functional values, and on golang.org/x/exp/constraints for the numeric
type parameter bound.
*/

import "golang.org/x/exp/constraints"

// Constraint validates a decoded or to-be-encoded value of type T,
// returning a non-nil error when the value is out of bounds.
type Constraint[T any] func(T) error

// ConstraintGroup runs each Constraint in sequence, stopping at the
// first failure.
type ConstraintGroup[T any] []Constraint[T]

// Validate applies every constraint in the group to v.
func (g ConstraintGroup[T]) Validate(v T) error {
	for _, c := range g {
		if c == nil {
			continue
		}
		if err := c(v); err != nil {
			return err
		}
	}
	return nil
}

/*
Range returns a Constraint rejecting any value outside [min, max]
(inclusive). Range[int64] can be passed to SetInteger and
SetEnumerated; the REAL setters take no constraints.
*/
func Range[T constraints.Integer | constraints.Float](min, max T) Constraint[T] {
	return func(v T) error {
		if v < min || v > max {
			return newErrf(KindSize, "value out of range")
		}
		return nil
	}
}

// MaxLen returns a Constraint rejecting byte/string-like values whose
// length exceeds n. The OCTET STRING and string setters take no
// constraints; a MaxLen value is applied by calling it directly or
// through ConstraintGroup.Validate.
func MaxLen[T ~string | ~[]byte](n int) Constraint[T] {
	return func(v T) error {
		if len(v) > n {
			return newErrf(KindSize, "value exceeds maximum length")
		}
		return nil
	}
}

// MinLen returns a Constraint rejecting byte/string-like values
// shorter than n.
func MinLen[T ~string | ~[]byte](n int) Constraint[T] {
	return func(v T) error {
		if len(v) < n {
			return newErrf(KindSize, "value shorter than minimum length")
		}
		return nil
	}
}
