package vector

// Element describes how a Vector creates, duplicates, relocates and destroys
// values of T. Every hook is optional; the zero Element treats T as a plain Go
// value.
type Element[T any] struct {
	// Init value-constructs into a zeroed slot. nil leaves the zero value.
	Init func(p *T) error
	// Copy copy-constructs *src into the zeroed slot dst. nil assigns.
	Copy func(dst, src *T) error
	// Move move-constructs *src into the zeroed slot dst and must leave *src
	// destructible. nil assigns then zeroes *src.
	Move func(dst, src *T) error
	// Destroy ends the lifetime of a live value.
	Destroy func(p *T)

	// MoveMayFail is set when Move can return an error. Transfers to a new
	// block then copy instead, unless NoCopy is also set.
	MoveMayFail bool
	// NoCopy is set when T cannot be duplicated.
	NoCopy bool
}

func (e *Element[T]) init(p *T) error {
	if e.Init == nil {
		return nil
	}
	return e.Init(p)
}

func (e *Element[T]) copy(dst, src *T) error {
	if e.Copy == nil {
		*dst = *src
		return nil
	}
	return e.Copy(dst, src)
}

func (e *Element[T]) move(dst, src *T) error {
	if e.Move == nil {
		*dst = *src
		var zero T
		*src = zero
		return nil
	}
	return e.Move(dst, src)
}

// destroy ends the lifetime of *p and returns the slot to the zero value.
func (e *Element[T]) destroy(p *T) {
	if e.Destroy != nil {
		e.Destroy(p)
	}
	var zero T
	*p = zero
}

// discard clears a slot whose construction failed. No lifetime began, so
// Destroy is not called.
func (e *Element[T]) discard(p *T) {
	var zero T
	*p = zero
}

// movable reports whether transfers between blocks move rather than copy.
func (e *Element[T]) movable() bool {
	return !e.MoveMayFail || e.NoCopy
}

func (e *Element[T]) transfer(dst, src *T) error {
	if e.movable() {
		return e.move(dst, src)
	}
	return e.copy(dst, src)
}

// assign replaces the live value *dst with a copy of *src. dst is untouched if
// the copy fails.
func (e *Element[T]) assign(dst, src *T) error {
	var tmp T
	if err := e.copy(&tmp, src); err != nil {
		return err
	}
	e.destroy(dst)
	*dst = tmp
	return nil
}
