package xmem

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// MinMaxCost 缓存最小容量（1MB）。过小的容量会导致频繁淘汰，影响命中率。
const MinMaxCost = 1 * 1024 * 1024

// Option 定义缓存可选配置函数类型。
type Option func(*options)

type options struct {
	numCounters int64
	maxCost     int64
	bufferItems int64
}

func defaultOptions() *options {
	return &options{
		numCounters: 1e6,              // 1M counters，适配约 10 万条目
		maxCost:     64 * 1024 * 1024, // 64MB
		bufferItems: 64,
	}
}

// WithNumCounters 设置频率统计的计数器数量，建议为预期条目数的 10 倍。
// n <= 0 时忽略此设置。
func WithNumCounters(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.numCounters = n
		}
	}
}

// WithMaxCost 设置缓存最大容量（字节）。
// cost <= 0 时忽略；小于 MinMaxCost (1MB) 时提升到 MinMaxCost。
func WithMaxCost(cost int64) Option {
	return func(o *options) {
		if cost > 0 {
			if cost < MinMaxCost {
				cost = MinMaxCost
			}
			o.maxCost = cost
		}
	}
}

// WithBufferItems 设置写入缓冲区大小，默认 64。
// n <= 0 时忽略此设置。
func WithBufferItems(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferItems = n
		}
	}
}

// Stats 是缓存统计信息快照。
type Stats struct {
	// Hits 命中次数。
	Hits uint64

	// Misses 未命中次数。
	Misses uint64

	// HitRatio 命中率 (0.0 - 1.0)。
	HitRatio float64

	// KeysAdded 已添加的 key 数量。
	KeysAdded uint64

	// KeysEvicted 已淘汰的 key 数量。
	KeysEvicted uint64

	// CostAdded 已添加的总成本（字节）。
	CostAdded uint64

	// CostEvicted 已淘汰的总成本（字节）。
	CostEvicted uint64
}

// Cache 是 ristretto 之上的进程内字节缓存。
// 必须通过 [New] 创建，零值不可用。所有方法并发安全。
type Cache struct {
	cache *ristretto.Cache[string, []byte]
}

// New 创建缓存实例。
func New(opts ...Option) (*Cache, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: o.numCounters,
		MaxCost:     o.maxCost,
		BufferItems: o.bufferItems,
		Metrics:     true, // 启用统计以支持 Stats()
	})
	if err != nil {
		return nil, fmt.Errorf("xmem: create cache: %w", err)
	}

	return &Cache{cache: cache}, nil
}

// Set 写入缓存，条目成本为 len(value)，ttl 为 0 表示永不过期。
// 返回 false 表示条目被准入策略拒绝（不是错误）。
// 写入异步生效，需要写后立读时先调用 Wait。
func (c *Cache) Set(key string, value []byte, ttl time.Duration) bool {
	return c.cache.SetWithTTL(key, value, int64(len(value)), ttl)
}

// Get 获取缓存值。键不存在、已过期或被淘汰时返回 nil 和 false。
func (c *Cache) Get(key string) ([]byte, bool) {
	return c.cache.Get(key)
}

// Delete 删除缓存条目。键不存在时是空操作。
func (c *Cache) Delete(key string) {
	c.cache.Del(key)
}

// Wait 等待所有缓冲中的写入生效。
func (c *Cache) Wait() {
	c.cache.Wait()
}

// Stats 返回统计信息快照。
func (c *Cache) Stats() Stats {
	m := c.cache.Metrics
	return Stats{
		Hits:        m.Hits(),
		Misses:      m.Misses(),
		HitRatio:    m.Ratio(),
		KeysAdded:   m.KeysAdded(),
		KeysEvicted: m.KeysEvicted(),
		CostAdded:   m.CostAdded(),
		CostEvicted: m.CostEvicted(),
	}
}

// Close 关闭缓存并停止内部 goroutine。关闭后不得再使用。
func (c *Cache) Close() {
	c.cache.Close()
}
