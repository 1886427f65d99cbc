package array

import "errors"

var (
	// ErrIndex indicates an index outside the valid range for the operation:
	// [First, Last] for access and removal, [First, Last+1] for insertion.
	ErrIndex = errors.New("array: index out of range")

	// ErrRange indicates construction with an invalid index range (hi+1 < lo
	// or a negative length).
	ErrRange = errors.New("array: invalid index range")
)
