package xcfg

// options 定义配置加载选项。
type options struct {
	delim string // 配置键分隔符，默认 "."
	tag   string // 结构体标签名，默认 "koanf"
}

// Option 定义配置选项函数类型。
type Option func(*options)

func defaultOptions() *options {
	return &options{
		delim: ".",
		tag:   "koanf",
	}
}

// WithDelim 设置配置键分隔符。
// 默认为 "."，例如 "app.server.port"。
func WithDelim(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delim = delim
		}
	}
}

// WithTag 设置结构体标签名。
// 默认为 "koanf"，用于反序列化时的字段映射。
func WithTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.tag = tag
		}
	}
}
