/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around parser generators. These kinds of algorithms are often more straightforward
to describe as set constructions and operations, e.g.

    closure(I) = I ∪ { B → •γ | A → α•Bβ ∈ closure(I) }

Elements are comparable Go values (usually LR items), so membership is
structural: two elements are the same if they compare equal with ==.
A set remembers the order of insertion, which is the order of iteration,
but equality of sets does not depend on it.

Unusually, all set operations are destructive!

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
