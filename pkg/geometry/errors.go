package geometry

import "errors"

var (
	ErrZeroScale          = errors.New("geometry: scale factors must be non-zero")
	ErrSingularTransform  = errors.New("geometry: transform matrix is not invertible")
	ErrNonAffineTransform = errors.New("geometry: transform matrix is not affine")
)
