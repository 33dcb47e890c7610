//go:build !unix

package xmmap

import (
	"fmt"
	"os"
)

// mapPages 非 unix 平台的退化实现：把文件分页读入堆内存。
// API 与语义同 unix 版本一致，raw 恒为 nil（无需解除映射）。
func mapPages(f *os.File, size, pageSize int64) (views, raw [][]byte, err error) {
	if size == 0 {
		return nil, nil, nil
	}

	n := int((size + pageSize - 1) / pageSize)
	views = make([][]byte, 0, n)

	for off := int64(0); off < size; off += pageSize {
		plen := pageSize
		if remaining := size - off; plen > remaining {
			plen = remaining
		}

		page := make([]byte, plen)
		if _, rerr := f.ReadAt(page, off); rerr != nil {
			return nil, nil, fmt.Errorf("xmmap: read page at offset %d: %w", off, rerr)
		}
		views = append(views, page)
	}
	return views, nil, nil
}

func unmapPages([][]byte) error { return nil }
