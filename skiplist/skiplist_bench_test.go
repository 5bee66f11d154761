package skiplist

import (
	"math/rand"
	"testing"
)

func BenchmarkSkiplist_Search(b *testing.B) {
	list := New[int, int](IntComparator, DefaultConfig())
	handles := make([]Handle, 1000)

	for i := range handles {
		list.Insert(&handles[i], i%100, 0)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		list.Search(rand.Intn(100))
	}
}

func BenchmarkSkiplist_SearchFiltered(b *testing.B) {
	list := New[int, int](IntComparator, DefaultConfig(), WithKeyFilter(IntKeyEncoder))
	handles := make([]Handle, 1000)

	for i := range handles {
		list.Insert(&handles[i], i*2, 0)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		list.Search(rand.Intn(2000))
	}
}

func BenchmarkSkiplist_SearchRange(b *testing.B) {
	list := New[int, int](IntComparator, DefaultConfig())
	handles := make([]Handle, 1000)

	for i := range handles {
		list.Insert(&handles[i], i, 0)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		from := rand.Intn(1000)
		list.SearchRange(from, from+10)
	}
}

func BenchmarkSkiplist_InsertDelete(b *testing.B) {
	list := New[int, int](IntComparator, DefaultConfig())
	handles := make([]Handle, 1000)

	for i := 0; i < b.N; i++ {
		h := &handles[i%len(handles)]

		if h.Bound() {
			list.Delete(h)
		}

		list.Insert(h, rand.Intn(100), 0)
	}
}
