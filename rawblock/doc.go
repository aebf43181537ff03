package rawblock

/*

# Raw storage blocks

This package provides the storage layer for the vector package: a Block owns a
fixed number of slots for one element type and nothing else.

It mirrors the `mmr` and `bloom` style:

- small, composable functions
- index arithmetic over a contiguous region
- a burden of knowledge on the caller for hot paths

## What a Block is (and is not)

A Block is an allocation. It does not know which of its slots hold live values.
The owner decides that, typically by tracking a live prefix:

	+----------------------+  slot 0
	| live                 |
	+----------------------+  ...
	| live                 |
	+----------------------+  slot size
	| uninitialized        |
	+----------------------+  ...
	| uninitialized        |
	+----------------------+  slot capacity (one past the end)

Uninitialized slots hold the zero value of the element type. The owner MUST end
the lifetime of every live value before calling Release; the block will not do
it.

## Ownership

A Block is move-only. Take transfers the storage to a new Block and leaves the
source as the null block (no storage, capacity 0). Swap exchanges storage in
constant time. Copying a Block value is a bug and is reported by go vet
(copylocks).

## Contract violations

Out of range indexing is not an error condition. It panics, in every build.
Allocation failure is an error: New returns ErrOutOfMemory and no block.

*/
