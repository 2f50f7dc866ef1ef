package cubefield

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceCreation means the surface or a GPU resource could not be acquired
	// while building the scene. The Field instance stays detached; nothing is retried.
	ErrResourceCreation = errors.New("cubefield: resource creation failed")

	// ErrSurfaceLost means the surface went away while the loop was running. The loop
	// stops; the host may attach a new surface from scratch.
	ErrSurfaceLost = errors.New("cubefield: drawing surface lost")

	// ErrStopped is returned by Start on a loop that stopped because of a failure.
	ErrStopped = errors.New("cubefield: loop stopped after failure")

	// ErrDetached is returned by operations that need an attached surface.
	ErrDetached = errors.New("cubefield: no surface attached")
)

func resourceError(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrResourceCreation, what, err)
}
