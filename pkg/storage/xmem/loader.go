package xmem

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultLoadTimeout 默认加载超时。回源 context 脱离调用方取消链之后，
// 依赖此超时防止后端挂起时 goroutine 永久阻塞。
const DefaultLoadTimeout = 30 * time.Second

// LoadFunc 定义从后端加载数据的函数类型。
type LoadFunc func(ctx context.Context) ([]byte, error)

// LoaderOption 定义 Loader 可选配置函数类型。
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	loadTimeout time.Duration
	logger      *slog.Logger
}

func defaultLoaderOptions() *loaderOptions {
	return &loaderOptions{
		loadTimeout: DefaultLoadTimeout,
		logger:      slog.Default(),
	}
}

// WithLoadTimeout 设置回源超时，默认 30s。d <= 0 时忽略。
func WithLoadTimeout(d time.Duration) LoaderOption {
	return func(o *loaderOptions) {
		if d > 0 {
			o.loadTimeout = d
		}
	}
}

// WithLogger 设置日志记录器，默认 slog.Default()。传入 nil 将被忽略。
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(o *loaderOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Loader 实现 Cache-Aside 的读路径：缓存查询 → 未命中回源 → 写缓存。
// 内置 singleflight，同一 key 的并发请求只回源一次（参见包文档）。
// 所有方法并发安全。
type Loader struct {
	cache  *Cache
	group  singleflight.Group
	opts   *loaderOptions
	logger *slog.Logger
}

// NewLoader 创建加载器。cache 为 nil 时返回 ErrNilCache。
func NewLoader(cache *Cache, opts ...LoaderOption) (*Loader, error) {
	if cache == nil {
		return nil, ErrNilCache
	}

	o := defaultLoaderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return &Loader{
		cache:  cache,
		opts:   o,
		logger: o.logger,
	}, nil
}

// Load 从缓存读取 key，未命中时调用 fn 回源并写回缓存。
// 缓存写入失败（准入拒绝）不会让 Load 失败，只记一条 Debug 日志。
func (l *Loader) Load(ctx context.Context, key string, fn LoadFunc, ttl time.Duration) ([]byte, error) {
	if fn == nil {
		return nil, ErrNilLoadFunc
	}

	if v, ok := l.cache.Get(key); ok {
		return v, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		// 进入临界区后二次检查，避免排队期间别人已经填好
		if v, ok := l.cache.Get(key); ok {
			return v, nil
		}

		// 脱离首个调用方的取消链，统一用加载超时约束回源，
		// 避免首个调用方取消把失败连坐给其他等待者
		loadCtx, cancel := context.WithTimeout(contextDetached(ctx), l.opts.loadTimeout)
		defer cancel()

		data, lerr := fn(loadCtx)
		if lerr != nil {
			return nil, fmt.Errorf("xmem: load %q: %w", key, lerr)
		}

		if !l.cache.Set(key, data, ttl) {
			l.logger.DebugContext(ctx, "xmem: cache set rejected by admission policy", "key", key)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// detachedCtx 保留原始 context 的 Value，但不继承其 Done/Err/Deadline。
type detachedCtx struct {
	context.Context
}

func (c detachedCtx) Deadline() (time.Time, bool) { return time.Time{}, false }
func (c detachedCtx) Done() <-chan struct{}       { return nil }
func (c detachedCtx) Err() error                  { return nil }

// contextDetached 创建脱离原始取消链的 context。
func contextDetached(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return detachedCtx{Context: ctx}
}
