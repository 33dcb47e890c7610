package xsorted

import "errors"

var (
	// ErrNilComparator 表示未提供比较器。
	ErrNilComparator = errors.New("xsorted: comparator must not be nil")

	// ErrIndexOutOfRange 表示下标越界。
	ErrIndexOutOfRange = errors.New("xsorted: index out of range")
)
