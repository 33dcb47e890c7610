// Package config 提供配置管理相关的子包。
//
// 子包列表：
//   - xcfg: 类型化配置文件加载，基于 koanf，支持热重载与文件监视
//
// 设计原则：
//   - 配置即快照：加载时反序列化，读取零成本
//   - 重载失败不污染当前配置
//   - 配置治理（校验、默认值）由上层按需实现
package config
