package xsorted

import "iter"

// Comparator 定义元素的全序：负数表示 a < b，0 表示相等，正数表示 a > b。
type Comparator[T any] func(a, b T) int

// Collection 是有序集合的最小契约。
// 不变式：All 的产出顺序始终与 Comparator 定义的全序一致。
type Collection[T any] interface {
	// Len 返回当前元素数。
	Len() int

	// Comparator 返回构造时固定的比较器。
	Comparator() Comparator[T]

	// All 返回按序迭代器。迭代期间不得变更集合。
	All() iter.Seq[T]
}

// List 是支持下标访问的有序集合契约。
// 插入位置由比较器决定，调用方无法指定。
type List[T any] interface {
	Collection[T]

	// At 返回下标 i 处的元素，越界时返回 ErrIndexOutOfRange。
	At(i int) (T, error)

	// IndexOf 返回与 v 相等的首个下标，不存在时返回 -1。
	IndexOf(v T) int

	// Contains 检查是否存在与 v 相等的元素。
	Contains(v T) bool

	// Add 按序插入元素，与已有元素相等时插入到相等段之后。
	Add(v T)

	// Remove 删除与 v 相等的首个元素，返回是否删除。
	Remove(v T) bool

	// RemoveAt 删除并返回下标 i 处的元素，越界时返回 ErrIndexOutOfRange。
	RemoveAt(i int) (T, error)
}
