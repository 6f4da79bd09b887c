package physics

import "errors"

var (
	ErrDegenerateScale = errors.New("physics: degenerate collider scale")
	ErrStaleHandle     = errors.New("physics: stale body handle")
)
