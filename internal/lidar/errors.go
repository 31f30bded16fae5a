package lidar

import "errors"

var (
	// ErrEmptyBuffer is returned by any read against a buffer with no live scans.
	ErrEmptyBuffer = errors.New("scan buffer is empty")

	// ErrIndexOutOfRange is returned when an angle maps outside the scan.
	ErrIndexOutOfRange = errors.New("angle out of scan range")

	// ErrInvalidArgument is returned for a bad resolution or capacity.
	ErrInvalidArgument = errors.New("invalid argument")
)
