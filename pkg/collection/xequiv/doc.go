// Package xequiv 提供以可插拔等价策略为键比较依据的有序映射。
//
// Go 原生 map 的键比较固定为 ==，无法表达"大小写不敏感的字符串键"、
// "按内容比较的 []byte 键"这类需求。xequiv.Map 把键的相等判断和哈希
// 全部委托给注入的 Equivalence 策略，键在内部以策略哈希包装存储，
// 对外暴露时原样返回。
//
// # 策略契约
//
// Equivalence 必须满足：Equivalent(a, b) 为真时 Hash(a) == Hash(b)。
// 这是调用方责任，Map 不做校验；违反契约时查找会静默落空，而不是报错。
// 内置策略（Bytes、FoldedStrings、Natural）均满足契约。
//
// # 顺序语义
//
// Map 按插入顺序维护条目（最旧在前）；WithAccessOrder 切换为访问顺序，
// Get/Put 命中即把条目刷新到最新位置。最旧条目可通过 Eldest 查看。
//
// # 最旧条目钩子
//
// WithEvictEldest 注册的钩子在每次"新键插入"之后被调用一次，参数为当前
// 最旧条目；返回 true 则该条目被移除。默认不注册钩子，即保留全部条目。
// 配合访问顺序即可组合出容量受限的缓存（参见示例）。
// 钩子内只允许只读访问 Map（Len、Eldest 等），严禁调用任何变更方法。
//
// # 并发安全
//
// Map 不是并发安全的，并发使用需要外部同步。
//
// # 注意事项
//
//   - 键以策略哈希装桶，同哈希条目线性比较；策略哈希质量直接影响性能
//   - Retain 通过构造临时 Map 实现集合求交，是 O(n) 的辅助分配
//   - Keys/Values/Entries 返回快照切片；All 返回迭代器，迭代期间不得变更
package xequiv
