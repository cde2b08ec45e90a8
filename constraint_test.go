package x690

import "testing"

func TestRangeConstraint(t *testing.T) {
	c := Range(0, 100)
	if err := c(50); err != nil {
		t.Errorf("50 should be in range: %v", err)
	}
	if err := c(101); err == nil {
		t.Errorf("101 should be out of range")
	}
}

func TestConstraintGroupStopsAtFirstFailure(t *testing.T) {
	g := ConstraintGroup[int64]{Range[int64](0, 10), Range[int64](0, 5)}
	if err := g.Validate(7); err == nil {
		t.Errorf("7 should fail the second constraint")
	}
	if err := g.Validate(3); err != nil {
		t.Errorf("3 should satisfy both constraints: %v", err)
	}
}

func TestSetIntegerAppliesConstraints(t *testing.T) {
	var e Element
	err := e.SetInteger(200, Range[int64](0, 100))
	if !AsKind(err, KindSize) {
		t.Errorf("expected SizeError, got %v", err)
	}
}

func TestMaxLenConstraint(t *testing.T) {
	c := MaxLen[[]byte](3)
	if err := c([]byte("ab")); err != nil {
		t.Errorf("length 2 should pass: %v", err)
	}
	if err := c([]byte("abcd")); err == nil {
		t.Errorf("length 4 should fail")
	}
}
