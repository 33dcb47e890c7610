package xbmap

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// maxCap 缓存最大条目数上限。
const maxCap = 1 << 24 // 16,777,216

// Option 定义缓存可选配置函数类型。
type Option[K comparable, V any] func(*options[K, V])

// options 内部可选配置。
type options[K comparable, V any] struct {
	onEvicted func(key K, value V)
}

// WithOnEvicted 设置条目因容量淘汰或被显式删除时的回调函数。
//
// 回调在触发它的方法内同步执行（Put 触发淘汰、Remove、Clear 等路径均会调用）。
// 严禁在回调中调用同一 LRU 实例的任何方法，应避免耗时操作。
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvicted = fn
	}
}

// LRU 是固定容量的 LRU 缓存，实现 [BoundedMap] 契约。
// 必须通过 [New] 或 [NewFromMap] 创建，零值不可用（方法调用会 panic）。
//
// LRU 不是并发安全的，并发使用需要外部同步（参见包文档）。
type LRU[K comparable, V any] struct {
	lru *simplelru.LRU[K, V]
	cap int
}

var _ BoundedMap[string, int] = (*LRU[string, int])(nil)

// New 创建容量为 maxEntries 的 LRU 缓存。
// 如果 maxEntries < 1，返回 ErrInvalidCap。
// 如果 maxEntries > maxCap (16,777,216)，返回 ErrCapExceedsMax。
func New[K comparable, V any](maxEntries int, opts ...Option[K, V]) (*LRU[K, V], error) {
	if maxEntries < 1 {
		return nil, ErrInvalidCap
	}
	if maxEntries > maxCap {
		return nil, ErrCapExceedsMax
	}

	o := &options[K, V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	// simplelru 仅在 size <= 0 时报错，上面已经拦截，这里的 err 恒为 nil
	lru, err := simplelru.NewLRU(maxEntries, simplelru.EvictCallback[K, V](o.onEvicted))
	if err != nil {
		return nil, err
	}

	return &LRU[K, V]{lru: lru, cap: maxEntries}, nil
}

// NewFromMap 以已有 map 作为种子创建 LRU 缓存，容量取种子的大小。
// 种子为空时返回 ErrEmptySeed。
//
// 注意：Go map 的迭代顺序是随机的，种子条目的初始 LRU 顺序因此不确定；
// 后续访问会照常刷新顺序。
func NewFromMap[K comparable, V any](seed map[K]V, opts ...Option[K, V]) (*LRU[K, V], error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	l, err := New[K, V](len(seed), opts...)
	if err != nil {
		return nil, err
	}
	for k, v := range seed {
		l.lru.Add(k, v)
	}
	return l, nil
}

// Get 获取缓存值，并把该条目刷新为最近使用。
// 键不存在时返回零值和 false。
func (l *LRU[K, V]) Get(key K) (value V, ok bool) {
	return l.lru.Get(key)
}

// Put 写入缓存值，并把该条目刷新为最近使用。
// 返回值表示本次插入是否触发了 LRU 淘汰：
//
//   - key 已存在时只更新值，不触发淘汰，返回 false
//   - key 不存在且缓存已满时，淘汰恰好一条最久未访问的条目，返回 true
//
// 淘汰静默发生；如需感知，使用 WithOnEvicted。
func (l *LRU[K, V]) Put(key K, value V) (evicted bool) {
	return l.lru.Add(key, value)
}

// GetOrPut 获取缓存值；键不存在时调用 compute 生成值并写入。
// 返回最终的值以及键在调用前是否已存在。
// 无论哪条路径都计为一次访问。
func (l *LRU[K, V]) GetOrPut(key K, compute func() V) (value V, existed bool) {
	if v, ok := l.lru.Get(key); ok {
		return v, true
	}
	v := compute()
	l.lru.Add(key, v)
	return v, false
}

// Peek 获取缓存值但不刷新 LRU 顺序。
// 适用于检查缓存状态而不影响淘汰策略的场景。
func (l *LRU[K, V]) Peek(key K) (value V, ok bool) {
	return l.lru.Peek(key)
}

// Contains 检查键是否存在（不刷新 LRU 顺序）。
func (l *LRU[K, V]) Contains(key K) bool {
	return l.lru.Contains(key)
}

// Remove 删除缓存条目，返回键是否存在。
// 删除不会触发容量淘汰，但会触发 OnEvicted 回调（条目离开缓存）。
func (l *LRU[K, V]) Remove(key K) bool {
	return l.lru.Remove(key)
}

// Oldest 返回当前最久未访问的条目（下一个淘汰候选），不刷新顺序。
// 缓存为空时返回零值和 false。
func (l *LRU[K, V]) Oldest() (key K, value V, ok bool) {
	return l.lru.GetOldest()
}

// Keys 返回所有键，按从最旧到最新的访问顺序排列。
func (l *LRU[K, V]) Keys() []K {
	return l.lru.Keys()
}

// Values 返回所有值，顺序与 Keys 对应。
func (l *LRU[K, V]) Values() []V {
	return l.lru.Values()
}

// Len 返回当前条目数。
func (l *LRU[K, V]) Len() int {
	return l.lru.Len()
}

// Cap 返回构造时固定的容量。
func (l *LRU[K, V]) Cap() int {
	return l.cap
}

// RemainingCapacity 返回还能容纳的条目数。
func (l *LRU[K, V]) RemainingCapacity() int {
	return l.cap - l.lru.Len()
}

// Clear 清空所有条目。
// 已注册 OnEvicted 时，每条条目都会触发一次回调。
func (l *LRU[K, V]) Clear() {
	l.lru.Purge()
}
