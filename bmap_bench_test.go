package bmap

import (
	"testing"
)

var benchHashers = []struct {
	name string
	fn   HashFunc
}{
	{"FNV32a", FNV32a},
	{"XXHash", XXHash},
	{"XXH3", XXH3},
}

const benchCount = 100_000

func benchKeys() [][]byte {
	keys := make([][]byte, benchCount)
	for i := range keys {
		keys[i] = testKey(i)
	}
	return keys
}

func BenchmarkAdd(b *testing.B) {
	keys := benchKeys()
	for _, h := range benchHashers {
		b.Run(h.name, func(b *testing.B) {
			b.ReportAllocs()
			m, _ := New[int](benchCount, h.fn)
			b.ResetTimer()
			i := 0
			for n := 0; n < b.N; n++ {
				_ = m.Add(keys[i], i)
				i++
				if i == benchCount {
					b.StopTimer()
					m.Destroy()
					m, _ = New[int](benchCount, h.fn)
					i = 0
					b.StartTimer()
				}
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	keys := benchKeys()
	for _, h := range benchHashers {
		b.Run(h.name, func(b *testing.B) {
			b.ReportAllocs()
			m, _ := New[int](benchCount, h.fn)
			for i, k := range keys {
				_ = m.Add(k, i)
			}
			b.ResetTimer()
			i := 0
			for n := 0; n < b.N; n++ {
				_, _ = m.Get(keys[i])
				i++
				if i == benchCount {
					i = 0
				}
			}
		})
	}
}

func BenchmarkGetMiss(b *testing.B) {
	keys := benchKeys()
	miss := make([][]byte, benchCount)
	for i := range miss {
		miss[i] = testKey(benchCount + i)
	}
	for _, h := range benchHashers {
		b.Run(h.name, func(b *testing.B) {
			b.ReportAllocs()
			m, _ := New[int](benchCount, h.fn)
			for i, k := range keys {
				_ = m.Add(k, i)
			}
			b.ResetTimer()
			i := 0
			for n := 0; n < b.N; n++ {
				_, _ = m.Get(miss[i])
				i++
				if i == benchCount {
					i = 0
				}
			}
		})
	}
}

func BenchmarkRemoveAdd(b *testing.B) {
	keys := benchKeys()
	for _, h := range benchHashers {
		b.Run(h.name, func(b *testing.B) {
			b.ReportAllocs()
			m, _ := New[int](benchCount, h.fn)
			for i, k := range keys {
				_ = m.Add(k, i)
			}
			b.ResetTimer()
			i := 0
			for n := 0; n < b.N; n++ {
				m.Remove(keys[i])
				_ = m.Add(keys[i], i)
				i++
				if i == benchCount {
					i = 0
				}
			}
		})
	}
}

func BenchmarkHashers(b *testing.B) {
	key := []byte("a-reasonably-typical-map-key")
	for _, h := range benchHashers {
		b.Run(h.name, func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				_ = h.fn(key)
			}
		})
	}
}
