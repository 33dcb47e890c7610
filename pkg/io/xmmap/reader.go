package xmmap

import (
	"fmt"
	"io"
	"sync"
)

// Reader 是 Source 上的独立只读游标，实现 io.Reader、io.ByteReader、
// io.ReaderAt、io.Seeker 和 io.Closer。
// 必须通过 [Source.NewReader] 创建，零值不可用。
//
// 所有方法持有实例锁：单个 Reader 可被多 goroutine 共享而不会破坏
// 游标状态，但交错读取的先后语义由调用方负责。
type Reader struct {
	pages    [][]byte
	size     int64
	pageSize int64

	mu   sync.Mutex
	pos  int64
	mark int64
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.ReaderAt   = (*Reader)(nil)
	_ io.Seeker     = (*Reader)(nil)
	_ io.Closer     = (*Reader)(nil)
)

// Read 从当前位置读取至多 len(p) 字节，跨页时依次从后继页续读。
// len(p) 为 0 时返回 (0, nil)；位置已到末尾时返回 (0, io.EOF)；
// 其余情况把读取量收敛到剩余字节数，不会返回短读错误。
func (r *Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(p) == 0 {
		return 0, nil
	}
	if r.pos >= r.size {
		return 0, io.EOF
	}

	n := len(p)
	if remaining := r.size - r.pos; int64(n) > remaining {
		n = int(remaining)
	}

	copied := 0
	for copied < n {
		page := r.pages[r.pos/r.pageSize]
		pageOff := r.pos % r.pageSize
		c := copy(p[copied:n], page[pageOff:])
		copied += c
		r.pos += int64(c)
	}
	return n, nil
}

// ReadByte 读取当前位置的单个字节并前进。位置已到末尾时返回 io.EOF。
func (r *Reader) ReadByte() (byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pos >= r.size {
		return 0, io.EOF
	}
	b := r.pages[r.pos/r.pageSize][r.pos%r.pageSize]
	r.pos++
	return b, nil
}

// ReadAt 从绝对偏移 off 读取，不触碰游标，可与其他方法并发使用。
// 语义遵循 io.ReaderAt：读满 len(p) 或在数据尾部返回 io.EOF。
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPosition, off)
	}
	if off >= r.size {
		return 0, io.EOF
	}

	n := len(p)
	var err error
	if remaining := r.size - off; int64(n) > remaining {
		n = int(remaining)
		err = io.EOF
	}

	copied := 0
	for copied < n {
		page := r.pages[off/r.pageSize]
		pageOff := off % r.pageSize
		c := copy(p[copied:n], page[pageOff:])
		copied += c
		off += int64(c)
	}
	return n, err
}

// Skip 向前跳过至多 n 字节，返回实际跳过量。
// n 超出剩余字节数时收敛到剩余量；n <= 0 是返回 0 的空操作。
func (r *Reader) Skip(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 {
		return 0
	}
	if remaining := r.size - r.pos; n > remaining {
		n = remaining
	}
	r.pos += n
	return n
}

// Mark 记录当前位置，供此后的 Reset 恢复。
func (r *Reader) Mark() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mark = r.pos
}

// Reset 把位置恢复到最近一次 Mark 记录的位置（默认为 0）。
func (r *Reader) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos = r.mark
}

// Position 返回当前位置。
func (r *Reader) Position() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}

// SeekTo 直接把游标定位到 p。
// p 超出 [0, Size()] 时返回 ErrInvalidPosition；
// 新位置早于当前 mark 时，mark 归零。
func (r *Reader) SeekTo(p int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seekToLocked(p)
}

// Seek 实现 io.Seeker。与常规文件不同，定位到 [0, Size()] 之外会
// 返回 ErrInvalidPosition（容量在映射时刻固化，越界位置无意义）。
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		abs = r.size + offset
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}

	if err := r.seekToLocked(abs); err != nil {
		return 0, err
	}
	return abs, nil
}

// Size 返回数据总长（字节）。
func (r *Reader) Size() int64 {
	return r.size
}

// Remaining 返回当前位置之后的剩余字节数。
func (r *Reader) Remaining() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size - r.pos
}

// Close 是空操作，恒返回 nil。映射属于 Source，与单个流的生死无关。
func (r *Reader) Close() error {
	return nil
}

// seekToLocked 持锁状态下的定位实现。
func (r *Reader) seekToLocked(p int64) error {
	if p < 0 || p > r.size {
		return fmt.Errorf("%w: %d (size %d)", ErrInvalidPosition, p, r.size)
	}
	if p < r.mark {
		r.mark = 0
	}
	r.pos = p
	return nil
}
