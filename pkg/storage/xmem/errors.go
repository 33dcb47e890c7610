package xmem

import "errors"

var (
	// ErrNilCache 表示未提供缓存实例。
	ErrNilCache = errors.New("xmem: cache must not be nil")

	// ErrNilLoadFunc 表示未提供回源函数。
	ErrNilLoadFunc = errors.New("xmem: load func must not be nil")
)
