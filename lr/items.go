package lr

import (
	"fmt"
	"sort"

	"github.com/npillmayer/slrgen/lr/iteratable"
)

// Item is an LR(0) item, i.e. a rule together with a position ("dot") within its
// right hand side:
//
//    Rule     Dot  Item
//    -------  ---  ------------
//    E → E+T   0   E → • E + T
//    E → E+T   2   E → E + • T
//    E → E+T   3   E → E + T •
//
// Items are values and compare equal iff their rules and dot positions are
// equal. They may be used as map keys and as members of iteratable.Set.
type Item struct {
	rule *Rule
	dot  int
}

// ItemKey is a canonical key for an item, independent of memory addresses.
type ItemKey struct {
	Rule int
	Dot  int
}

// StartItem returns the item r → •α and the symbol after the dot (nil for an
// ε-rule).
func StartItem(r *Rule) (Item, *Symbol) {
	i := Item{rule: r, dot: 0}
	return i, i.PeekSymbol()
}

// Rule returns the item's rule.
func (i Item) Rule() *Rule {
	return i.rule
}

// PeekSymbol returns the symbol after the dot, or nil if the item is complete.
func (i Item) PeekSymbol() *Symbol {
	if i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// Advance moves the dot one position to the right. Advancing a complete item
// returns the item unchanged.
func (i Item) Advance() Item {
	if i.dot >= len(i.rule.rhs) {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

// Prefix returns the symbols in front of the dot.
func (i Item) Prefix() []*Symbol {
	return i.rule.rhs[:i.dot]
}

// IsComplete is true for items A → α•.
func (i Item) IsComplete() bool {
	return i.dot == len(i.rule.rhs)
}

// Key returns the canonical key of an item.
func (i Item) Key() ItemKey {
	return ItemKey{Rule: i.rule.Serial, Dot: i.dot}
}

func (i Item) String() string {
	return fmt.Sprintf("%v → %s", i.rule.LHS, symbolsString(i.rule.rhs, i.dot))
}

func asItem(x interface{}) Item {
	return x.(Item)
}

func newItemSet() *iteratable.Set {
	return iteratable.NewSet(0)
}

// ItemsOf returns the items of an item set in insertion order.
func ItemsOf(S *iteratable.Set) []Item {
	items := make([]Item, 0, S.Size())
	S.Each(func(x interface{}) {
		items = append(items, asItem(x))
	})
	return items
}

// sortedKeys returns the canonical keys of an item set, sorted. Two item sets
// are equal iff their sorted keys are equal.
func sortedKeys(S *iteratable.Set) []ItemKey {
	keys := make([]ItemKey, 0, S.Size())
	S.Each(func(x interface{}) {
		keys = append(keys, asItem(x).Key())
	})
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].Rule == keys[b].Rule {
			return keys[a].Dot < keys[b].Dot
		}
		return keys[a].Rule < keys[b].Rule
	})
	return keys
}

// Dump is a debugging helper: it traces the items of an item set.
func Dump(S *iteratable.Set) {
	for n, item := range ItemsOf(S) {
		tracer().Debugf("[%2d] %s", n+1, item)
	}
}
