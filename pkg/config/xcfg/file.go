package xcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// snapshot 把 koanf 实例和反序列化结果绑定为一个原子单元，
// Reload 时整体替换，保证 Value 和 Koanf 看到同一版本。
type snapshot[T any] struct {
	k   *koanf.Koanf
	val *T
}

// File 表示一份已解析的类型化配置。
// 零值不可用，必须通过 Load 或 LoadBytes 创建。
type File[T any] struct {
	cur       atomic.Pointer[snapshot[T]]
	path      string
	format    Format
	opts      *options
	reloadMu  sync.Mutex // 序列化 Reload，防止配置回退
	fromBytes bool
}

// Load 从文件路径加载配置，并立即反序列化为 T。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load[T any](path string, opts ...Option) (*File[T], error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	snap, err := parse[T](data, format, o)
	if err != nil {
		return nil, err
	}

	f := &File[T]{
		path:   path,
		format: format,
		opts:   o,
	}
	f.cur.Store(snap)
	return f, nil
}

// LoadBytes 从字节数据加载配置。
// 需要显式指定格式，适用于 K8s ConfigMap 等场景。
// 空数据会产生 T 的零值快照，与 Load 读到空文件的行为一致。
// 由此创建的 File 不支持 Reload 和 Watch。
func LoadBytes[T any](data []byte, format Format, opts ...Option) (*File[T], error) {
	if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	snap, err := parse[T](data, format, o)
	if err != nil {
		return nil, err
	}

	f := &File[T]{
		format:    format,
		opts:      o,
		fromBytes: true,
	}
	f.cur.Store(snap)
	return f, nil
}

// Value 返回当前配置快照。
// 快照一经发布即只读，Reload 之后返回新快照，旧快照仍可安全使用。
func (f *File[T]) Value() T {
	return *f.cur.Load().val
}

// Koanf 返回与当前快照对应的 koanf 实例。
// 用于按路径取值等 koanf 原始操作。不要长期缓存返回的指针，
// Reload 后它指向旧配置。
func (f *File[T]) Koanf() *koanf.Koanf {
	return f.cur.Load().k
}

// Reload 重新读取并解析配置文件，成功后原子替换快照。
// 解析失败时保留旧快照不变。此方法是并发安全的。
func (f *File[T]) Reload() error {
	if f.fromBytes {
		return ErrNotReloadable
	}

	f.reloadMu.Lock()
	defer f.reloadMu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	snap, err := parse[T](data, f.format, f.opts)
	if err != nil {
		return err
	}

	f.cur.Store(snap)
	return nil
}

// Path 返回配置文件路径。从字节数据创建的 File 返回空字符串。
func (f *File[T]) Path() string {
	return f.path
}

// Format 返回配置格式。
func (f *File[T]) Format() Format {
	return f.format
}

// =============================================================================
// 内部辅助函数
// =============================================================================

// parse 解析数据并反序列化，产出一个完整快照。
func parse[T any](data []byte, format Format, o *options) (*snapshot[T], error) {
	k := koanf.New(o.delim)

	// 空数据时保留空 koanf 实例，反序列化得到零值
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
	}

	val := new(T)
	if err := k.UnmarshalWithConf("", val, koanf.UnmarshalConf{
		Tag: o.tag,
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}

	return &snapshot[T]{k: k, val: val}, nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

// isValidFormat 检查格式是否有效。
func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// loadData 加载数据到 koanf 实例。
func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
