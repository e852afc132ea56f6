package iteratable

import (
	"fmt"
	"strings"
)

// Set is a set type for comparable values. It keeps track of the order of
// insertion and offers an iterator which will visit every element exactly once,
// including elements which are added while the iteration is under way.
//
//    S := NewSet(0)
//    S.Add(x).Add(y)
//    S.IterateOnce()
//    for S.Next() {
//        item := S.Item()
//        …                   // may call S.Add(…) here
//    }
//
// The zero value is not usable, create sets with NewSet.
type Set struct {
	values []interface{}
	index  map[interface{}]int // element → position in values
	cursor int                 // iteration position
}

// NewSet creates an empty set. capacity is a hint for the expected number of
// elements.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		values: make([]interface{}, 0, capacity),
		index:  make(map[interface{}]int, capacity),
		cursor: -1,
	}
}

// Add inserts an element, if not already present. Returns the set.
func (s *Set) Add(x interface{}) *Set {
	if _, ok := s.index[x]; ok {
		return s
	}
	s.index[x] = len(s.values)
	s.values = append(s.values, x)
	return s
}

// Contains checks for membership of x.
func (s *Set) Contains(x interface{}) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[x]
	return ok
}

// Size returns the number of elements.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Empty is true for sets of size 0.
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// Values returns the elements in insertion order. The slice is a copy.
func (s *Set) Values() []interface{} {
	if s == nil {
		return nil
	}
	vals := make([]interface{}, len(s.values))
	copy(vals, s.values)
	return vals
}

// Copy creates a (shallow) copy of s.
func (s *Set) Copy() *Set {
	c := NewSet(s.Size())
	if s != nil {
		for _, x := range s.values {
			c.Add(x)
		}
	}
	return c
}

// Union adds all elements of other to s. Returns s.
func (s *Set) Union(other *Set) *Set {
	if other == nil {
		return s
	}
	for _, x := range other.values {
		s.Add(x)
	}
	return s
}

// Difference removes all elements of other from s. Returns s.
func (s *Set) Difference(other *Set) *Set {
	if other == nil || s.Empty() {
		return s
	}
	kept := s.values[:0]
	for _, x := range s.values {
		if !other.Contains(x) {
			kept = append(kept, x)
		}
	}
	s.values = kept
	s.index = make(map[interface{}]int, len(kept))
	for i, x := range kept {
		s.index[x] = i
	}
	s.cursor = -1
	return s
}

// Equals is true if s and other contain the same elements, regardless of the
// order in which they have been inserted.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	if s.Size() == 0 {
		return true
	}
	for _, x := range s.values {
		if _, ok := other.index[x]; !ok {
			return false
		}
	}
	return true
}

// Each calls f for every element, in insertion order.
func (s *Set) Each(f func(interface{})) {
	if s == nil {
		return
	}
	for _, x := range s.values {
		f(x)
	}
}

// IterateOnce starts an iteration over the elements of s.
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next moves the iteration cursor forward. Returns false if there are no more
// elements.
func (s *Set) Next() bool {
	if s == nil {
		return false
	}
	if s.cursor < len(s.values) {
		s.cursor++
	}
	return s.cursor < len(s.values)
}

// Item returns the element at the iteration cursor.
func (s *Set) Item() interface{} {
	if s.cursor < 0 || s.cursor >= len(s.values) {
		return nil
	}
	return s.values[s.cursor]
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, x := range s.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteString(" }")
	return b.String()
}
