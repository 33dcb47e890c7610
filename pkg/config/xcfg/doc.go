// Package xcfg 提供类型化的配置文件加载与热重载，基于 koanf 实现。
//
// # 设计理念
//
// xcfg 把配置文件解析为一个调用方定义的结构体快照：
// Load[T] 在加载时就完成反序列化，之后 Value() 以零成本返回快照指针副本。
// 配置治理（必选字段校验、默认值注入、环境变量覆盖）由上层按需实现。
//
//   - 工厂函数：Load, LoadBytes
//   - Koanf() 暴露底层 koanf 实例，用于按路径取值等原始操作
//   - 增值功能：并发安全的 Reload、类型化的 Value 快照、文件监视
//
// # 支持的格式
//
//   - YAML（默认，推荐）：.yaml, .yml
//   - JSON：.json
//
// # 并发安全
//
// Value() 和 Koanf() 通过 atomic.Pointer 无锁读取当前快照；
// Reload() 通过 sync.Mutex 序列化，解析成功后原子替换快照，
// 失败时保留旧快照不变。快照一经发布即只读，调用方可以长期持有，
// 但持有的是重载前的旧数据。
//
// # 配置监视
//
// Watch 基于 fsnotify 监视配置文件所在目录，内置防抖，
// 支持 vim/emacs 的原子写入（写临时文件后 rename）。
// 从字节数据创建的 File 不支持 Reload 和 Watch。
// Stop() 返回后不会再有新的回调开始，在回调中调用 Stop() 不会死锁。
package xcfg
