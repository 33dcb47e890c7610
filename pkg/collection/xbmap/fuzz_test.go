package xbmap

import (
	"testing"
)

func FuzzLRU(f *testing.F) {
	f.Add("key1", 100, uint8(0))
	f.Add("", 0, uint8(1))
	f.Add("key2", -1, uint8(2))
	f.Add("key3", 42, uint8(3))
	f.Add("key4", 999, uint8(4))

	l, err := New[string, int](64)
	if err != nil {
		f.Fatalf("New failed: %v", err)
	}

	f.Fuzz(func(t *testing.T, key string, value int, op uint8) {
		switch op % 7 {
		case 0:
			l.Put(key, value)
		case 1:
			l.Get(key)
		case 2:
			l.Remove(key)
		case 3:
			l.Peek(key)
		case 4:
			l.Contains(key)
		case 5:
			l.GetOrPut(key, func() int { return value })
		case 6:
			l.Oldest()
		}

		// 容量不变式在任意操作序列下都必须成立
		if l.Len() > l.Cap() {
			t.Fatalf("Len() = %d exceeds Cap() = %d", l.Len(), l.Cap())
		}
		if l.RemainingCapacity() != l.Cap()-l.Len() {
			t.Fatalf("RemainingCapacity() = %d, expected %d", l.RemainingCapacity(), l.Cap()-l.Len())
		}
	})
}

func FuzzNew(f *testing.F) {
	f.Add(1)
	f.Add(0)
	f.Add(-1)
	f.Add(maxCap + 1)

	f.Fuzz(func(t *testing.T, capacity int) {
		l, err := New[string, int](capacity)
		if err != nil {
			return
		}
		// 基本操作不应 panic
		l.Put("k", 1)
		l.Get("k")
		l.Peek("k")
		l.Contains("k")
		l.Keys()
		l.Values()
		l.Remove("k")
		l.Clear()
	})
}
