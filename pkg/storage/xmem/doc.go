// Package xmem 提供进程内字节缓存，基于 ristretto 实现。
//
// xmem 定位为本地 L1 缓存：按字节成本计量容量，条目级 TTL，
// 并通过 Loader 提供防击穿的回源加载（singleflight 去重）。
//
// # 异步写入语义
//
// ristretto 的写入经由内部缓冲异步生效，Set 之后立即 Get 可能未命中。
// 需要写后立读（典型是测试）时调用 Wait() 等待缓冲排空。
// 这是性能优化的设计，适合绝大多数缓存场景。
//
// # Loader 去重说明
//
// singleflight 去重仅基于 key，不包含 ttl：同一 key 的并发请求只回源一次，
// 最终缓存的 TTL 取决于首个请求的配置。同一数据应使用一致的 TTL 配置。
// 回源函数收到的 context 已脱离首个调用方的取消链，仅保留统一的加载超时，
// 避免首个调用方取消把结果连坐给其他等待者。
//
// # 注意事项
//
//   - 成本即字节数：Set 以 len(value) 作为条目成本
//   - Set 返回 false 表示条目被准入策略拒绝，不是错误
//   - 缓存写入失败不会让 Load 失败：数据已经拿到，只记一条日志
//   - 使用完毕应调用 Close() 释放内部 goroutine
package xmem
