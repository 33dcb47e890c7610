package xsorted_test

import (
	"fmt"

	"github.com/omeyang/ckit/pkg/collection/xsorted"
)

func Example() {
	l := xsorted.NewOrderedList[int]()

	l.Add(42)
	l.Add(7)
	l.Add(19)

	for v := range l.All() {
		fmt.Println(v)
	}

	// Output:
	// 7
	// 19
	// 42
}

func Example_customComparator() {
	type user struct {
		name string
		age  int
	}

	// 按年龄排序
	l, err := xsorted.NewList[user](func(a, b user) int { return a.age - b.age })
	if err != nil {
		panic(err)
	}

	l.Add(user{"alice", 30})
	l.Add(user{"bob", 25})

	youngest, _ := l.At(0)
	fmt.Println(youngest.name)

	// Output:
	// bob
}
