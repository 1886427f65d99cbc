package rectarray

import "errors"

var (
	// ErrIndex indicates a row or column index outside its valid range.
	ErrIndex = errors.New("rectarray: index out of range")

	// ErrRange indicates construction with an invalid axis range
	// (max+1 < min or a negative count).
	ErrRange = errors.New("rectarray: invalid index range")

	// ErrShape indicates a SetRow/SetColumn source array whose index range
	// does not match the target axis exactly.
	ErrShape = errors.New("rectarray: shape mismatch")
)
