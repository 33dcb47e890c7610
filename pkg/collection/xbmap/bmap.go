package xbmap

// BoundedMap 定义容量受限映射的最小契约。
// 不变式：任何变更操作完成后 Len() <= Cap() 恒成立。
//
// 接口只约束容量语义，不约束淘汰策略：实现可以拒绝超额插入，
// 也可以像 [LRU] 一样淘汰旧条目腾出空间。
type BoundedMap[K comparable, V any] interface {
	// Len 返回当前条目数。
	Len() int

	// Cap 返回构造时固定的最大条目数。
	Cap() int

	// RemainingCapacity 返回还能容纳的条目数，等于 Cap() - Len()。
	RemainingCapacity() int
}
