package iteratable

import (
	"testing"
)

type pair struct {
	a, b int
}

func TestSetAddStructural(t *testing.T) {
	S := NewSet(0)
	S.Add(pair{1, 2}).Add(pair{1, 2}).Add(pair{2, 1})
	if S.Size() != 2 {
		t.Errorf("expected set to collapse duplicates, size is %d", S.Size())
	}
	if !S.Contains(pair{2, 1}) {
		t.Errorf("expected set to contain (2,1), doesn't")
	}
}

func TestSetEqualsIgnoresOrder(t *testing.T) {
	S1 := NewSet(0).Add(pair{1, 0}).Add(pair{2, 0}).Add(pair{3, 0})
	S2 := NewSet(0).Add(pair{3, 0}).Add(pair{1, 0}).Add(pair{2, 0})
	if !S1.Equals(S2) || !S2.Equals(S1) {
		t.Errorf("expected %v and %v to be equal", S1, S2)
	}
	S3 := NewSet(0).Add(pair{1, 0}).Add(pair{2, 0}).Add(pair{4, 0})
	if S1.Equals(S3) {
		t.Errorf("expected %v and %v to differ", S1, S3)
	}
	S2.Add(pair{4, 0})
	if S1.Equals(S2) {
		t.Errorf("expected %v and %v to differ", S1, S2)
	}
	if !NewSet(0).Equals(NewSet(5)) {
		t.Errorf("expected empty sets to be equal")
	}
}

func TestSetIterateWhileGrowing(t *testing.T) {
	S := NewSet(0).Add(0)
	S.IterateOnce()
	visited := 0
	for S.Next() {
		n := S.Item().(int)
		visited++
		if n < 9 {
			S.Add(n + 1)
		}
	}
	if visited != 10 || S.Size() != 10 {
		t.Errorf("expected iteration to visit 10 elements, visited %d", visited)
	}
}

func TestSetDifferenceUnion(t *testing.T) {
	S1 := NewSet(0).Add(1).Add(2).Add(3)
	S2 := NewSet(0).Add(2).Add(4)
	D := S1.Copy().Difference(S2)
	if D.Size() != 2 || D.Contains(2) {
		t.Errorf("expected {1,3}, have %v", D)
	}
	if S1.Size() != 3 {
		t.Errorf("expected copy to protect original set, have %v", S1)
	}
	U := S1.Union(S2)
	if U != S1 || U.Size() != 4 {
		t.Errorf("expected destructive union {1,2,3,4}, have %v", U)
	}
	vals := U.Values()
	if vals[0] != 1 || vals[3] != 4 {
		t.Errorf("expected insertion order to be retained, have %v", vals)
	}
}
