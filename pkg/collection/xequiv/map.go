package xequiv

import (
	"container/list"
	"iter"
)

// Entry 是键值对的外部视图，键以调用方传入的原始形态暴露。
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// entry 是内部存储形态，挂在顺序链表的节点上。
type entry[K any, V any] struct {
	key   K
	value V
}

// EvictEldestFunc 是最旧条目钩子：每次新键插入后以当前最旧条目调用一次，
// 返回 true 则该条目被移除。钩子内只允许只读访问 m（Len、Eldest 等）。
type EvictEldestFunc[K any, V any] func(m *Map[K, V], eldest Entry[K, V]) bool

// MapOption 定义 Map 可选配置函数类型。
type MapOption[K any, V any] func(*mapOptions[K, V])

type mapOptions[K any, V any] struct {
	accessOrder  bool
	capacityHint int
	evictEldest  EvictEldestFunc[K, V]
}

// WithAccessOrder 切换为访问顺序：Get/Put 命中会把条目刷新到最新位置。
// 默认为插入顺序。
func WithAccessOrder[K any, V any]() MapOption[K, V] {
	return func(o *mapOptions[K, V]) {
		o.accessOrder = true
	}
}

// WithCapacityHint 预估条目数，用于预分配内部桶表。
// hint <= 0 时忽略。
func WithCapacityHint[K any, V any](hint int) MapOption[K, V] {
	return func(o *mapOptions[K, V]) {
		if hint > 0 {
			o.capacityHint = hint
		}
	}
}

// WithEvictEldest 注册最旧条目钩子（参见 [EvictEldestFunc] 与包文档）。
// 传入 nil 等价于不注册，即保留全部条目。
func WithEvictEldest[K any, V any](fn EvictEldestFunc[K, V]) MapOption[K, V] {
	return func(o *mapOptions[K, V]) {
		o.evictEldest = fn
	}
}

// Map 是以 Equivalence 策略决定键相等性的有序映射。
// 必须通过 [NewMap] 或 [NewMapFromEntries] 创建，零值不可用。
//
// Map 不是并发安全的，并发使用需要外部同步。
type Map[K any, V any] struct {
	eq          Equivalence[K]
	buckets     map[uint64][]*list.Element
	order       *list.List // Front 为最旧，Back 为最新
	accessOrder bool
	evictEldest EvictEldestFunc[K, V]
}

// NewMap 创建空 Map。eq 为 nil 时返回 ErrNilEquivalence。
func NewMap[K any, V any](eq Equivalence[K], opts ...MapOption[K, V]) (*Map[K, V], error) {
	if eq == nil {
		return nil, ErrNilEquivalence
	}

	o := &mapOptions[K, V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return &Map[K, V]{
		eq:          eq,
		buckets:     make(map[uint64][]*list.Element, o.capacityHint),
		order:       list.New(),
		accessOrder: o.accessOrder,
		evictEldest: o.evictEldest,
	}, nil
}

// NewMapFromEntries 创建 Map 并按序逐条 Put 种子条目。
// 种子中互相等价的键会发生覆盖，以靠后的为准。
func NewMapFromEntries[K any, V any](eq Equivalence[K], entries []Entry[K, V], opts ...MapOption[K, V]) (*Map[K, V], error) {
	m, err := NewMap(eq, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}
	return m, nil
}

// Put 写入键值。键已存在（按策略等价）时更新值并返回旧值和 true；
// 否则插入新条目并返回零值和 false。
// 新键插入后会以当前最旧条目调用一次 EvictEldest 钩子（如已注册）。
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced bool) {
	h := m.eq.Hash(key)
	if elem := m.find(h, key); elem != nil {
		e := elem.Value.(*entry[K, V])
		prev, e.value = e.value, value
		if m.accessOrder {
			m.order.MoveToBack(elem)
		}
		return prev, true
	}

	elem := m.order.PushBack(&entry[K, V]{key: key, value: value})
	m.buckets[h] = append(m.buckets[h], elem)
	m.afterInsert()
	return prev, false
}

// Get 按策略等价查找键。命中且启用访问顺序时刷新条目位置。
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	elem := m.find(m.eq.Hash(key), key)
	if elem == nil {
		return value, false
	}
	if m.accessOrder {
		m.order.MoveToBack(elem)
	}
	return elem.Value.(*entry[K, V]).value, true
}

// Contains 检查是否存在与 key 等价的键，不影响顺序。
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(m.eq.Hash(key), key) != nil
}

// Remove 删除与 key 等价的条目，返回其值和是否存在。
func (m *Map[K, V]) Remove(key K) (value V, ok bool) {
	elem := m.find(m.eq.Hash(key), key)
	if elem == nil {
		return value, false
	}
	value = elem.Value.(*entry[K, V]).value
	m.removeElement(elem)
	return value, true
}

// Eldest 返回当前最旧条目，Map 为空时返回零值和 false。
func (m *Map[K, V]) Eldest() (Entry[K, V], bool) {
	front := m.order.Front()
	if front == nil {
		return Entry[K, V]{}, false
	}
	e := front.Value.(*entry[K, V])
	return Entry[K, V]{Key: e.key, Value: e.value}, true
}

// Len 返回当前条目数。
func (m *Map[K, V]) Len() int {
	return m.order.Len()
}

// Clear 清空所有条目。
func (m *Map[K, V]) Clear() {
	m.buckets = make(map[uint64][]*list.Element)
	m.order.Init()
}

// Keys 返回所有键的快照，从最旧到最新。
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.order.Len())
	for elem := m.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}

// Values 返回所有值的快照，顺序与 Keys 对应。
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.order.Len())
	for elem := m.order.Front(); elem != nil; elem = elem.Next() {
		values = append(values, elem.Value.(*entry[K, V]).value)
	}
	return values
}

// Entries 返回所有条目的快照，从最旧到最新。
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.order.Len())
	for elem := m.order.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[K, V])
		entries = append(entries, Entry[K, V]{Key: e.key, Value: e.value})
	}
	return entries
}

// All 返回从最旧到最新的条目迭代器。迭代期间不得变更 Map。
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for elem := m.order.Front(); elem != nil; elem = elem.Next() {
			e := elem.Value.(*entry[K, V])
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Retain 只保留与候选键等价的条目，返回被删除的条目数。
//
// 实现方式是把候选键装入一个共享同一策略的临时 Map，再对自身求交。
// 这是一次 O(n) 的辅助分配，不是流式过滤。
func (m *Map[K, V]) Retain(keys []K) int {
	scratch, err := NewMap[K, struct{}](m.eq, WithCapacityHint[K, struct{}](len(keys)))
	if err != nil {
		// eq 非 nil（构造时已校验），不可达
		return 0
	}
	for _, k := range keys {
		scratch.Put(k, struct{}{})
	}

	var doomed []*list.Element
	for elem := m.order.Front(); elem != nil; elem = elem.Next() {
		if !scratch.Contains(elem.Value.(*entry[K, V]).key) {
			doomed = append(doomed, elem)
		}
	}
	for _, elem := range doomed {
		m.removeElement(elem)
	}
	return len(doomed)
}

// =============================================================================
// 内部辅助
// =============================================================================

// find 在哈希桶内线性查找等价键，未命中返回 nil。
func (m *Map[K, V]) find(h uint64, key K) *list.Element {
	for _, elem := range m.buckets[h] {
		if m.eq.Equivalent(elem.Value.(*entry[K, V]).key, key) {
			return elem
		}
	}
	return nil
}

// afterInsert 在新键插入后执行最旧条目钩子。
func (m *Map[K, V]) afterInsert() {
	if m.evictEldest == nil {
		return
	}
	front := m.order.Front()
	if front == nil {
		return
	}
	e := front.Value.(*entry[K, V])
	if m.evictEldest(m, Entry[K, V]{Key: e.key, Value: e.value}) {
		m.removeElement(front)
	}
}

// removeElement 同时从桶表和顺序链表中摘除节点。
func (m *Map[K, V]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[K, V])
	h := m.eq.Hash(e.key)

	bucket := m.buckets[h]
	for i, candidate := range bucket {
		if candidate == elem {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = bucket
	}

	m.order.Remove(elem)
}
