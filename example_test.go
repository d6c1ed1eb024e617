package bmap_test

import (
	"fmt"

	"github.com/byteseq/bmap"
)

func Example() {
	m, err := bmap.New[string](64, bmap.XXHash)
	if err != nil {
		panic(err)
	}
	defer m.Destroy()

	_ = m.Add([]byte("alpha"), "first")
	_ = m.Add([]byte("beta"), "second")

	if v, ok := m.Get([]byte("alpha")); ok {
		fmt.Println(v)
	}

	// Duplicate inserts are rejected, not treated as updates.
	err = m.Add([]byte("alpha"), "replacement")
	fmt.Println(err)

	m.Remove([]byte("alpha"))
	_, ok := m.Get([]byte("alpha"))
	fmt.Println(ok)

	// Output:
	// first
	// bmap: duplicate key
	// false
}

func ExampleWithValueFree() {
	type conn struct{ addr string }

	m, _ := bmap.New[*conn](8, bmap.FNV32a,
		bmap.WithValueFree(func(c *conn) {
			fmt.Println("closing", c.addr)
		}))

	_ = m.Add([]byte("a"), &conn{addr: "10.0.0.1"})
	_ = m.Add([]byte("b"), &conn{addr: "10.0.0.2"})

	m.Remove([]byte("a"))
	m.Destroy()

	// Output:
	// closing 10.0.0.1
	// closing 10.0.0.2
}
