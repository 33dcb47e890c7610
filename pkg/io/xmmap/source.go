package xmmap

import (
	"fmt"
	"os"
	"sync"
)

const (
	// DefaultPageSize 默认页大小（1 GiB）。
	DefaultPageSize = 1 << 30

	// MaxPageSize 单页上限（1 GiB）。单次映射的长度受 int32 寻址限制，
	// 取 2 的幂便于对齐，也给内部偏移运算留出余量。
	MaxPageSize = 1 << 30
)

// Option 定义 Source 可选配置函数类型。
type Option func(*options)

type options struct {
	pageSize int64
}

func defaultOptions() *options {
	return &options{pageSize: DefaultPageSize}
}

// WithPageSize 设置页大小（字节）。
// 有效区间为 [1, MaxPageSize]，越界时 Open 返回 ErrInvalidPageSize。
// 主要用于测试跨页边界的读取路径，生产环境一般保持默认值。
func WithPageSize(size int64) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// Source 是一个文件的分页只读映射。
// 必须通过 [Open] 创建，零值不可用。
// 容量（文件大小）在映射时刻固化，之后文件的增长对 Source 不可见。
type Source struct {
	pages    [][]byte // 对外页视图，pages[i] 覆盖 [i*pageSize, i*pageSize+len)
	raw      [][]byte // 底层映射，Close 时按原样解除
	size     int64
	pageSize int64

	closeOnce sync.Once
	closeErr  error
}

// Open 打开文件并建立分页只读映射。
// 文件描述符在映射完成后立即关闭。构造要么完整成功，要么返回错误
// 且不留任何残余映射。空文件得到零页的 Source，Size() 为 0。
func Open(path string, opts ...Option) (*Source, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.pageSize < 1 || o.pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, o.pageSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xmmap: open: %w", err)
	}
	// 映射建立后文件描述符即无用，映射不依赖它存活
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("xmmap: stat: %w", err)
	}

	pages, raw, err := mapPages(f, fi.Size(), o.pageSize)
	if err != nil {
		return nil, err
	}

	return &Source{
		pages:    pages,
		raw:      raw,
		size:     fi.Size(),
		pageSize: o.pageSize,
	}, nil
}

// Size 返回映射时刻的文件大小（字节）。
func (s *Source) Size() int64 {
	return s.size
}

// Pages 返回页数。空文件为 0。
func (s *Source) Pages() int {
	return len(s.pages)
}

// PageSize 返回页大小（字节）。
func (s *Source) PageSize() int64 {
	return s.pageSize
}

// NewReader 派生一个新的独立游标，初始位置为 0。
// 各 Reader 互不干扰，可在不同 goroutine 中并发使用。
// 页已常驻内存，无需再套缓冲装饰器。
func (s *Source) NewReader() *Reader {
	return &Reader{
		pages:    s.pages,
		size:     s.size,
		pageSize: s.pageSize,
	}
}

// Close 解除全部映射。幂等：重复调用返回首次的结果。
// Close 之后不得再使用任何已派生的 Reader。
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = unmapPages(s.raw)
		s.pages = nil
		s.raw = nil
	})
	return s.closeErr
}
