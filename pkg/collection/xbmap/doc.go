// Package xbmap 提供容量受限的映射契约与 LRU 缓存实现。
//
// xbmap 定义 BoundedMap 接口（容量上限 + 剩余容量查询），并基于
// github.com/hashicorp/golang-lru/v2/simplelru 提供其 LRU 实现，
// 适合作为需要感知容量的本地小数据集缓存使用。
//
// # 核心特性
//
//   - 泛型支持：支持任意 comparable 的键类型和任意值类型
//   - 容量不变式：任何单条插入完成后 Len() <= Cap() 恒成立
//   - LRU 淘汰：插入导致超出容量时，淘汰恰好一条最久未访问的条目
//   - 访问语义：Get/Put/GetOrPut 均计为一次访问，会刷新条目的 LRU 顺序；
//     Peek/Contains 不影响顺序
//
// # 并发安全
//
// xbmap 不是并发安全的。这是有意的设计选择：LRU 的每次读取都会改写
// 访问顺序，加锁策略（Mutex、分片、单 goroutine 独占）应由调用方按
// 场景决定，而不是在最底层一刀切。需要并发安全的带 TTL 缓存请使用
// 独立封装（如在业务层包一把 sync.Mutex）。
//
// # 淘汰语义
//
// 淘汰只在"新键插入且超出容量"时发生，查询和删除永远不会触发淘汰。
// 默认静默丢弃被淘汰条目；如需感知淘汰事件（记录日志、释放资源），
// 通过 WithOnEvicted 注册回调。回调同步执行，严禁在回调中再调用
// 同一实例的任何方法。
//
// # 注意事项
//
//   - Cap 在构造时固定，不支持运行期扩缩容
//   - NewFromMap 以种子 map 的大小作为容量，种子为空时返回 ErrEmptySeed
//   - Keys/Values 按从最旧到最新的访问顺序返回，复杂度 O(n)
package xbmap
