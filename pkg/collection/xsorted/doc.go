// Package xsorted 提供基于比较器的有序集合契约与实现。
//
// # 功能概览
//
//   - [Collection]/[List]: 有序集合/有序列表的接口契约，约束"元素始终
//     按比较器排序"这一不变式，不约束底层结构
//   - [SliceList]: 基于切片 + 二分插入的 List 实现，适合读多写少的小集合
//
// # 顺序语义
//
// 比较器在构造时固定。重复元素允许存在，新元素插入到相等段之后
// （稳定插入），IndexOf 返回相等段的首个下标。
//
// # 并发安全
//
// xsorted 不是并发安全的，并发使用需要外部同步。
package xsorted
