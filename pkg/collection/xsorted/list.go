package xsorted

import (
	"cmp"
	"iter"
	"sort"
)

// Option 定义列表可选配置函数类型。
type Option func(*options)

type options struct {
	capacityHint int
}

// WithCapacityHint 预估元素数，用于预分配内部切片。
// hint <= 0 时忽略。
func WithCapacityHint(hint int) Option {
	return func(o *options) {
		if hint > 0 {
			o.capacityHint = hint
		}
	}
}

// SliceList 是基于切片的 [List] 实现。
// 必须通过 [NewList] 或 [NewOrderedList] 创建，零值不可用。
//
// SliceList 不是并发安全的，并发使用需要外部同步。
type SliceList[T any] struct {
	cmp   Comparator[T]
	items []T
}

var _ List[int] = (*SliceList[int])(nil)

// NewList 创建空列表。comparator 为 nil 时返回 ErrNilComparator。
func NewList[T any](comparator Comparator[T], opts ...Option) (*SliceList[T], error) {
	if comparator == nil {
		return nil, ErrNilComparator
	}

	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return &SliceList[T]{
		cmp:   comparator,
		items: make([]T, 0, o.capacityHint),
	}, nil
}

// NewOrderedList 创建使用自然序的列表，适用于内建有序类型。
func NewOrderedList[T cmp.Ordered](opts ...Option) *SliceList[T] {
	l, _ := NewList(cmp.Compare[T], opts...)
	return l
}

// Len 返回当前元素数。
func (l *SliceList[T]) Len() int {
	return len(l.items)
}

// Comparator 返回构造时固定的比较器。
func (l *SliceList[T]) Comparator() Comparator[T] {
	return l.cmp
}

// All 返回按序迭代器。迭代期间不得变更列表。
func (l *SliceList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// At 返回下标 i 处的元素，越界时返回 ErrIndexOutOfRange。
func (l *SliceList[T]) At(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l.items[i], nil
}

// IndexOf 返回与 v 相等的首个下标（相等段的下界），不存在时返回 -1。
func (l *SliceList[T]) IndexOf(v T) int {
	i := l.lowerBound(v)
	if i < len(l.items) && l.cmp(l.items[i], v) == 0 {
		return i
	}
	return -1
}

// Contains 检查是否存在与 v 相等的元素。
func (l *SliceList[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// Add 按序插入元素。与已有元素相等时插入到相等段之后（稳定插入）。
func (l *SliceList[T]) Add(v T) {
	// 上界：首个大于 v 的位置
	i := sort.Search(len(l.items), func(i int) bool { return l.cmp(l.items[i], v) > 0 })

	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
}

// Remove 删除与 v 相等的首个元素，返回是否删除。
func (l *SliceList[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	_, _ = l.RemoveAt(i)
	return true
}

// RemoveAt 删除并返回下标 i 处的元素，越界时返回 ErrIndexOutOfRange。
func (l *SliceList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	v := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return v, nil
}

// lowerBound 返回首个不小于 v 的位置。
func (l *SliceList[T]) lowerBound(v T) int {
	return sort.Search(len(l.items), func(i int) bool { return l.cmp(l.items[i], v) >= 0 })
}
