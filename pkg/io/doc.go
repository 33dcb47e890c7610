// Package io 提供输入输出相关的子包。
//
// 子包列表：
//   - xmmap: 只读内存映射文件源，分页映射、多游标独立读取
//
// 设计原则：
//   - 大文件零拷贝读取，按页映射规避单段长度上限
//   - 读取游标相互独立，可并发创建使用
//   - 平台差异通过构建标签隔离，非 Unix 平台自动降级
package io
