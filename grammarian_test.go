package grammarian

import "testing"

func TestSpan(t *testing.T) {
	s := Span{3, 5}
	if s.Len() != 2 {
		t.Errorf("expected length of %v to be 2, is %d", s, s.Len())
	}
	if s.IsNull() {
		t.Errorf("expected %v to be non-null", s)
	}
	x := s.Extend(Span{1, 4})
	if x.From() != 1 || x.To() != 5 {
		t.Errorf("expected extension to be (1…5), is %v", x)
	}
	if x.String() != "(1…5)" {
		t.Errorf("unexpected string representation %q", x.String())
	}
}
