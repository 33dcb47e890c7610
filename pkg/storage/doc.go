// Package storage 提供数据存储相关的子包。
//
// 子包列表：
//   - xmem: 进程内字节缓存，基于 ristretto，内置回源去重加载器
//
// 设计原则：
//   - 成本感知的容量控制，按字节数而非条目数淘汰
//   - 并发回源只打一次后端（singleflight）
//   - 内置命中率等统计指标
package storage
