// Package xmmap 提供基于分页内存映射的只读文件访问。
//
// Source 在打开时把文件按固定页大小切分，逐页建立只读映射；
// 单页不超过单次映射的寻址上限，因此支持远大于单页的文件。
// 用于建立映射的文件描述符在映射完成后立即关闭，映射本身不依赖它继续存活。
//
// # 使用模型
//
//	src, err := xmmap.Open("/var/data/index.bin")
//	if err != nil { ... }
//	defer src.Close()
//
//	r := src.NewReader()
//	buf := make([]byte, 4096)
//	n, err := r.Read(buf)
//
// 同一 Source 可以派生任意多个 Reader，每个 Reader 持有独立的游标
// （position/mark），共享同一组不可变页。不同 goroutine 各持一个
// Reader 并发读取是安全的。
//
// # 游标语义
//
//   - Read/ReadByte 到达末尾返回 io.EOF
//   - Skip 将跳过量收敛到剩余字节数，负数跳过是返回 0 的空操作
//   - Mark 记录当前位置，Reset 回到最近一次 Mark（默认为 0）
//   - SeekTo 直接定位；新位置早于当前 mark 时，mark 归零
//
// # 并发安全
//
// Reader 的所有方法持有实例锁，单个 Reader 可以被多 goroutine 共享
// （但游标是共享的，交错读取的语义由调用方负责）。页内容只读且不可变，
// 跨 Reader 无需任何同步。
//
// # 生命周期
//
// Reader.Close 是空操作：映射属于 Source，与单个流的生死无关。
// Source.Close 解除全部映射且幂等；Close 之后继续使用任何已派生的
// Reader 是未定义行为（unix 平台会触碰已解除的映射）。
//
// # 平台支持
//
// unix 平台使用 golang.org/x/sys/unix 建立真实映射；其余平台退化为
// 一次性读入堆内存的分页副本，API 与语义完全一致。
package xmmap
