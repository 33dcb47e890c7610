package xequiv

import (
	"bytes"
	"hash/maphash"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Equivalence 定义键的等价策略：相等判断 + 一致的哈希。
// 契约：Equivalent(a, b) 为真时必须有 Hash(a) == Hash(b)（参见包文档）。
type Equivalence[K any] interface {
	// Equivalent 判断两个键是否等价。
	Equivalent(a, b K) bool

	// Hash 返回键的哈希值，必须与 Equivalent 一致。
	Hash(k K) uint64
}

// =============================================================================
// 内置策略
// =============================================================================

type bytesEquivalence struct{}

func (bytesEquivalence) Equivalent(a, b []byte) bool { return bytes.Equal(a, b) }
func (bytesEquivalence) Hash(k []byte) uint64        { return xxhash.Sum64(k) }

// Bytes 返回按内容比较 []byte 键的策略。
// 哈希使用 xxhash，nil 与空切片视为等价。
func Bytes() Equivalence[[]byte] {
	return bytesEquivalence{}
}

type foldedStringsEquivalence struct{}

func (foldedStringsEquivalence) Equivalent(a, b string) bool { return strings.EqualFold(a, b) }
func (foldedStringsEquivalence) Hash(k string) uint64        { return xxhash.Sum64String(foldString(k)) }

// FoldedStrings 返回大小写不敏感的字符串键策略。
// 相等判断使用 strings.EqualFold；哈希对 Unicode 简单折叠后的规范形式计算，
// 保证 EqualFold 为真的两个串哈希一致（包括 'K'/'k'、'ſ'/'s' 这类折叠环）。
func FoldedStrings() Equivalence[string] {
	return foldedStringsEquivalence{}
}

// foldString 把字符串的每个 rune 规范化为其简单折叠环中的最小 rune。
// strings.EqualFold 正是按简单折叠环定义的，因此规范形式相等 ⟺ EqualFold。
//
// ASCII 字母折叠环的最小成员是大写字母（'A' < 'a'，K/S 环的最小值
// 也分别是 'K'/'S'），所以 ASCII 串的规范形式是其大写形式。
func foldString(s string) string {
	// ASCII 快路径：逐字节转大写即为规范形式（k/s 环虽含 U+212A/U+017F，
	// 最小值仍是 'K'/'S'）；无小写字母时原串可直接复用
	ascii := true
	hasLower := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
		if 'a' <= c && c <= 'z' {
			hasLower = true
		}
	}
	if ascii {
		if !hasLower {
			return s
		}
		b := []byte(s)
		for i, c := range b {
			if 'a' <= c && c <= 'z' {
				b[i] = c - ('a' - 'A')
			}
		}
		return string(b)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

// foldRune 返回 r 所在简单折叠环中的最小 rune。
func foldRune(r rune) rune {
	minRune := r
	for next := unicode.SimpleFold(r); next != r; next = unicode.SimpleFold(next) {
		if next < minRune {
			minRune = next
		}
	}
	return minRune
}

// naturalSeed 供 Natural 策略使用的进程级哈希种子。
var naturalSeed = maphash.MakeSeed()

type naturalEquivalence[K comparable] struct{}

func (naturalEquivalence[K]) Equivalent(a, b K) bool { return a == b }
func (naturalEquivalence[K]) Hash(k K) uint64        { return maphash.Comparable(naturalSeed, k) }

// Natural 返回使用原生 == 比较的策略，适合把普通键与自定义策略键
// 混用在同一套 API 下的场景。
// 哈希使用 runtime 级的 maphash.Comparable，种子进程内固定，
// 跨进程不可复现（与 Go map 自身的哈希行为一致）。
func Natural[K comparable]() Equivalence[K] {
	return naturalEquivalence[K]{}
}
