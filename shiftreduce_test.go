package shiftreduce

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	if e := s.Extend(Span{1, 2}); e != (Span{1, 5}) {
		t.Errorf("expected (1…5), got %v", e)
	}
	if e := s.Extend(Span{7, 7}); e != s {
		t.Errorf("null span must not extend %v, got %v", s, e)
	}
	if e := (Span{4, 4}).Extend(s); e != s {
		t.Errorf("null span extended by %v should be %v, got %v", s, s, e)
	}
	if s.Len() != 2 || s.IsNull() {
		t.Errorf("expected span %v to have length 2", s)
	}
}
