package cache_test

import (
	"fmt"

	"lrucache/internal/cache"
)

func ExampleCache() {
	c, err := cache.New(cache.Config[int, string]{Capacity: 3})
	if err != nil {
		panic(err)
	}

	c.Put(1, "foo")
	c.Put(2, "bar")
	c.Put(3, "lol")
	c.Get(1)
	c.Put(4, "haha")

	_, ok := c.Get(2)
	fmt.Println("2 cached:", ok)
	fmt.Println(c.Keys())
	// Output:
	// 2 cached: false
	// [4 1 3]
}
