package xmmap

import "errors"

var (
	// ErrInvalidPageSize 表示页大小配置无效（小于 1 或超过单页映射上限）。
	ErrInvalidPageSize = errors.New("xmmap: page size out of range")

	// ErrInvalidPosition 表示目标位置超出 [0, Size()] 区间。
	ErrInvalidPosition = errors.New("xmmap: position out of range")

	// ErrInvalidWhence 表示 Seek 的 whence 参数非法。
	ErrInvalidWhence = errors.New("xmmap: invalid whence")
)
