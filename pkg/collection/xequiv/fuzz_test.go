package xequiv

import (
	"strings"
	"testing"
)

func FuzzMap_FoldedStrings(f *testing.F) {
	f.Add("key1", 1, uint8(0))
	f.Add("", 0, uint8(1))
	f.Add("ÄÖÜ", -1, uint8(2))
	f.Add("Kelvin", 42, uint8(3))
	f.Add("mixedCASE", 7, uint8(4))

	m, err := NewMap[string, int](FoldedStrings())
	if err != nil {
		f.Fatalf("NewMap failed: %v", err)
	}

	f.Fuzz(func(t *testing.T, key string, value int, op uint8) {
		switch op % 5 {
		case 0:
			m.Put(key, value)
		case 1:
			m.Get(key)
		case 2:
			m.Remove(key)
		case 3:
			m.Contains(key)
		case 4:
			m.Eldest()
		}

		// 等价键查找一致性：写入后任意大小写形态必须命中
		m.Put(key, value)
		if v, ok := m.Get(strings.ToUpper(key)); !ok || v != value {
			// ToUpper 可能改变字节长度但不改变折叠等价性
			if !FoldedStrings().Equivalent(key, strings.ToUpper(key)) {
				t.Skipf("ToUpper broke fold equivalence for %q", key)
			}
			t.Fatalf("Get(upper(%q)) = (%d, %v), expected (%d, true)", key, v, ok, value)
		}
	})
}

func FuzzFoldString(f *testing.F) {
	f.Add("hello", "HELLO")
	f.Add("", "")
	f.Add("straße", "STRASSE")
	f.Add("ſ", "s")

	eq := FoldedStrings()
	f.Fuzz(func(t *testing.T, a, b string) {
		// 契约：Equivalent 为真时哈希必须一致
		if eq.Equivalent(a, b) && eq.Hash(a) != eq.Hash(b) {
			t.Fatalf("equivalent strings hash differently: %q vs %q", a, b)
		}
	})
}
