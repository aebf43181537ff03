package vectortesting

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-vector/vector"
)

var ErrInjected = errors.New("vectortesting: injected failure")

// Tracked is an element whose lifetime is recorded by a Tracker.
type Tracked struct {
	Value int
	// Moved is set on the source of a move.
	Moved bool
}

// Tracker counts element lifetimes and fails chosen operations. The Fail*At
// fields are 1 based: FailCopyAt = 3 fails the third copy. 0 never fails.
type Tracker struct {
	Live int

	Inits    int
	Copies   int
	Moves    int
	Destroys int

	FailInitAt int
	FailCopyAt int
	FailMoveAt int
}

// Element returns hooks that record into tr. moveMayFail marks the move hook
// as fallible, which makes a Vector copy on reallocation.
func (tr *Tracker) Element(moveMayFail bool) vector.Element[Tracked] {
	return vector.Element[Tracked]{
		Init: func(p *Tracked) error {
			tr.Inits++
			if tr.Inits == tr.FailInitAt {
				return fmt.Errorf("init %d: %w", tr.Inits, ErrInjected)
			}
			tr.Live++
			return nil
		},
		Copy: func(dst, src *Tracked) error {
			tr.Copies++
			if tr.Copies == tr.FailCopyAt {
				return fmt.Errorf("copy %d: %w", tr.Copies, ErrInjected)
			}
			*dst = Tracked{Value: src.Value}
			tr.Live++
			return nil
		},
		Move: func(dst, src *Tracked) error {
			tr.Moves++
			if tr.Moves == tr.FailMoveAt {
				return fmt.Errorf("move %d: %w", tr.Moves, ErrInjected)
			}
			*dst = Tracked{Value: src.Value}
			*src = Tracked{Moved: true}
			tr.Live++
			return nil
		},
		Destroy: func(p *Tracked) {
			tr.Destroys++
			tr.Live--
		},
		MoveMayFail: moveMayFail,
	}
}

// Reset clears the counters and failure points, keeping Live.
func (tr *Tracker) Reset() {
	live := tr.Live
	*tr = Tracker{Live: live}
}

// Values returns the Value of each element of v in order.
func Values(v *vector.Vector[Tracked]) []int {
	out := make([]int, 0, v.Len())
	for _, p := range v.All() {
		out = append(out, p.Value)
	}
	return out
}

// NewTracked returns a vector holding values, built with tr's hooks.
func NewTracked(tr *Tracker, moveMayFail bool, values ...int) (*vector.Vector[Tracked], error) {
	v := vector.New(vector.WithElement(tr.Element(moveMayFail)))
	for _, x := range values {
		if err := v.PushBack(Tracked{Value: x}); err != nil {
			return nil, err
		}
	}
	return v, nil
}
