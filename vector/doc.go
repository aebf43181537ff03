// Package vector implements Vector, a growable sequence that manages element
// lifetimes on top of a rawblock.Block.
//
// Slots [0, Len()) of the block hold live elements and the rest are
// uninitialized. Appending to a full vector allocates a block of twice the
// size (1 from empty), builds the new element there, then transfers the
// existing elements across and swaps the blocks. Element lifecycle is
// described by Element: the zero value treats T as a plain Go value, while
// hooks let a type observe or veto construction, copy, move and destruction.
//
// Transfers between blocks move the elements unless the move hook is declared
// fallible (Element.MoveMayFail) and the type is copyable, in which case they
// copy and the old block is left untouched until the copy has succeeded.
// Every operation that allocates commits by swapping in a fully built block,
// so a failure leaves the vector as it was. The in-place branch of CopyFrom is
// the one exception, see its documentation. A fallible move on a type that
// cannot be copied also loses that guarantee, since moved from values cannot be
// restored.
//
// Out of range indices, PopBack and Erase on an empty vector and negative sizes
// are contract violations and panic. Vector is not safe for concurrent use.
package vector
