package vector_test

import (
	"testing"

	"github.com/forestrie/go-vector/vector"
)

func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		for j := 0; j < 1024; j++ {
			_ = v.PushBack(j)
		}
	}
}

func BenchmarkPushBackReserved(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		_ = v.Reserve(1024)
		for j := 0; j < 1024; j++ {
			_ = v.PushBack(j)
		}
	}
}

func BenchmarkSliceAppend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s []int
		for j := 0; j < 1024; j++ {
			s = append(s, j)
		}
		_ = s
	}
}

func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		for j := 0; j < 256; j++ {
			_, _ = v.Insert(0, j)
		}
	}
}

func BenchmarkEraseFront(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v, _ := vector.NewSized[int](256)
		b.StartTimer()
		for v.Len() > 0 {
			v.Erase(0)
		}
	}
}
