package cache_test

import (
	"testing"

	"github.com/dmitrymomot/cachemap/pkg/cache"
)

func BenchmarkMap_Put(b *testing.B) {
	c, err := cache.New[int, int](1000, 0, 0, cache.WithStrictEviction())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := range b.N {
		c.Put(i%2000, i)
	}
}

func BenchmarkMap_Get(b *testing.B) {
	c, err := cache.New[int, int](1000, 0, 0)
	if err != nil {
		b.Fatal(err)
	}
	for i := range 1000 {
		c.Put(i, i)
	}

	b.ResetTimer()
	for i := range b.N {
		c.Get(i % 1000)
	}
}

func BenchmarkMap_GetParallel(b *testing.B) {
	c, err := cache.New[int, int](1000, 0, 0)
	if err != nil {
		b.Fatal(err)
	}
	for i := range 1000 {
		c.Put(i, i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.Get(i % 1000)
			i++
		}
	})
}

func BenchmarkMap_Mixed(b *testing.B) {
	c, err := cache.New[int, int](1000, 0, 0, cache.WithStrictEviction())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := range b.N {
		if i%2 == 0 {
			c.Put(i%2000, i)
		} else {
			c.Get(i % 2000)
		}
	}
}
