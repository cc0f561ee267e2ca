package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lrucache/internal/cache"
)

func main() {
	capacity := flag.Int("capacity", 3, "maximum number of cached entries")
	flag.Parse()

	c, err := cache.New(cache.Config[int, string]{
		Capacity: *capacity,
		OnEvict: func(key int, value string) {
			log.Printf("evicted %d=%q (was LRU)", key, value)
		},
	})
	if err != nil {
		log.Printf("cache init: %v", err)
		os.Exit(1)
	}

	log.Println("LRU cache demo starting")
	log.Printf("config: capacity=%d", c.Cap())

	// -------------------------------------------------------------------
	// 1) Fill the cache
	// -------------------------------------------------------------------
	c.Put(1, "foo")
	c.Put(2, "bar")
	c.Put(3, "lol")
	log.Printf("keys after fill (MRU->LRU): %v", c.Keys())

	// -------------------------------------------------------------------
	// 2) A read is a touch
	// -------------------------------------------------------------------
	if v, ok := c.Get(1); ok {
		log.Printf("GET 1 = %q (touches 1 -> MRU)", v)
	} else {
		log.Println("GET 1: missing")
	}
	log.Printf("keys after get (MRU->LRU): %v", c.Keys())

	// -------------------------------------------------------------------
	// 3) Overflow evicts the LRU key (2 when capacity=3)
	// -------------------------------------------------------------------
	c.Put(4, "haha")
	for _, key := range []int{2, 3} {
		if v, ok := c.Get(key); ok {
			log.Printf("GET %d = %q", key, v)
		} else {
			log.Printf("GET %d: missing", key)
		}
	}
	log.Printf("keys at end (MRU->LRU): %v size=%d", c.Keys(), c.Len())

	fmt.Println("Done.")
}
