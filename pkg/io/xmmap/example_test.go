package xmmap_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/omeyang/ckit/pkg/io/xmmap"
)

func Example() {
	dir, err := os.MkdirTemp("", "xmmap")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("hello, mapped world"), 0o600); err != nil {
		panic(err)
	}

	src, err := xmmap.Open(path)
	if err != nil {
		panic(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src.NewReader())
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))

	// Output:
	// hello, mapped world
}

func Example_markReset() {
	dir, err := os.MkdirTemp("", "xmmap")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("abcdef"), 0o600); err != nil {
		panic(err)
	}

	src, err := xmmap.Open(path)
	if err != nil {
		panic(err)
	}
	defer src.Close()

	r := src.NewReader()
	r.Skip(2)
	r.Mark()

	buf := make([]byte, 2)
	if _, err := r.Read(buf); err != nil {
		panic(err)
	}
	fmt.Println(string(buf))

	// 回到 Mark 记录的位置重读
	r.Reset()
	if _, err := r.Read(buf); err != nil {
		panic(err)
	}
	fmt.Println(string(buf))

	// Output:
	// cd
	// cd
}
