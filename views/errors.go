package views

import "errors"

// Contract violations reported by constructors and consumers.
// Branch on them with errors.Is; they are wrapped with the failing operation.
var (
	// ErrNotMultiPass is returned when a view can be traversed only once but the
	// operation needs to restart it.
	ErrNotMultiPass = errors.New("views: view is single-pass")

	// ErrNotBidirectional is returned when an operation needs to retreat a cursor.
	ErrNotBidirectional = errors.New("views: view is not bidirectional")

	// ErrNotRandomAccess is returned when an operation needs cursor distances.
	ErrNotRandomAccess = errors.New("views: view is not random access")

	// ErrUnbounded is returned when an operation needs an end cursor the view cannot produce.
	ErrUnbounded = errors.New("views: view has no end cursor")

	// ErrInfinite is returned when an operation would have to read an infinite view to its end.
	ErrInfinite = errors.New("views: view is infinite")

	// ErrEmptyCycle is returned by Cycle for a view without elements.
	ErrEmptyCycle = errors.New("views: cannot cycle an empty view")

	// ErrNilView is returned when a constructor is given a nil view.
	ErrNilView = errors.New("views: nil view")

	// ErrIndexOutOfBounds is returned by At for an index outside the view.
	ErrIndexOutOfBounds = errors.New("views: index out of bounds")
)
