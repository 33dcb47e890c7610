// Package collection 提供容器与集合相关的子包。
//
// 子包列表：
//   - xbmap: 有界映射与 LRU 缓存，容量受限、访问序淘汰
//   - xequiv: 自定义等价策略的映射，支持大小写不敏感、字节切片等键语义
//   - xsorted: 保持排序的集合与列表，基于比较器的有序插入
//
// 设计原则：
//   - 泛型 API，编译期类型安全
//   - 单 goroutine 语义，外部按需加锁
//   - 行为可预测：淘汰、排序、等价规则在文档中明确
package collection
