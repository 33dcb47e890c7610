package xbmap

import "errors"

var (
	// ErrInvalidCap 表示容量配置无效（小于 1）。
	ErrInvalidCap = errors.New("xbmap: capacity must be greater than 0")

	// ErrCapExceedsMax 表示容量超过上限 (16,777,216)。
	ErrCapExceedsMax = errors.New("xbmap: capacity must not exceed 16777216")

	// ErrEmptySeed 表示种子 map 为空，无法推导容量。
	ErrEmptySeed = errors.New("xbmap: seed map must not be empty")
)
