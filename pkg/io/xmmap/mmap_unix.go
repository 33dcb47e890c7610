//go:build unix

package xmmap

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mapPages 把文件 [0, size) 按 pageSize 切分并逐页建立只读映射。
// views 是对齐裁剪后的对外页视图；raw 是需要 Munmap 的原始映射。
// 任一页失败时回收已建立的映射，不留半成品。
func mapPages(f *os.File, size, pageSize int64) (views, raw [][]byte, err error) {
	if size == 0 {
		return nil, nil, nil
	}

	fd := int(f.Fd())
	// mmap 的 offset 必须按系统页对齐；pageSize 不对齐时向下取整后裁剪视图
	align := int64(unix.Getpagesize())

	n := int((size + pageSize - 1) / pageSize)
	views = make([][]byte, 0, n)
	raw = make([][]byte, 0, n)

	for off := int64(0); off < size; off += pageSize {
		plen := pageSize
		if remaining := size - off; plen > remaining {
			plen = remaining
		}

		aligned := off &^ (align - 1)
		delta := off - aligned

		m, merr := unix.Mmap(fd, aligned, int(delta+plen), unix.PROT_READ, unix.MAP_SHARED)
		if merr != nil {
			_ = unmapPages(raw)
			return nil, nil, fmt.Errorf("xmmap: mmap page at offset %d: %w", off, merr)
		}
		raw = append(raw, m)
		views = append(views, m[delta:delta+plen])
	}
	return views, raw, nil
}

// unmapPages 解除全部原始映射，聚合各页的错误。
func unmapPages(raw [][]byte) error {
	var errs []error
	for i, m := range raw {
		if err := unix.Munmap(m); err != nil {
			errs = append(errs, fmt.Errorf("xmmap: munmap page %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
