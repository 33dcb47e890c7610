package xequiv

import "errors"

var (
	// ErrNilEquivalence 表示未提供等价策略。
	ErrNilEquivalence = errors.New("xequiv: equivalence must not be nil")
)
