package queue

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// BenchmarkOffer benchmarks uncontended enqueues across capacities.
func BenchmarkOffer(b *testing.B) {
	ctx := context.Background()

	for _, capacity := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("capacity_%d", capacity), func(b *testing.B) {
			q, err := New[int](capacity, capacity)
			if err != nil {
				b.Fatal(err)
			}

			var sink SliceSink[int]
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inserted, err := q.Offer(ctx, i, 0)
				if err != nil {
					b.Fatal(err)
				}
				if !inserted {
					b.StopTimer()
					sink = sink[:0]
					if _, err := q.DrainTo(ctx, &sink, 0); err != nil {
						b.Fatal(err)
					}
					b.StartTimer()
				}
			}
		})
	}
}

// BenchmarkOfferParallel benchmarks contended enqueues with a background drainer.
func BenchmarkOfferParallel(b *testing.B) {
	for _, fair := range []bool{false, true} {
		b.Run(fmt.Sprintf("fair_%v", fair), func(b *testing.B) {
			q, err := New[int](512, 1024, WithFairness[int](fair))
			if err != nil {
				b.Fatal(err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan struct{})
			go func() {
				defer close(done)
				for {
					var sink SliceSink[int]
					if _, err := q.DrainTo(ctx, &sink, 5*time.Millisecond); err != nil {
						return
					}
					if q.IsPoisoned() && q.Size() == 0 {
						return
					}
				}
			}()

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					if _, err := q.Offer(ctx, i, 10*time.Millisecond); err != nil {
						return
					}
					i++
				}
			})
			b.StopTimer()

			q.Poison()
			<-done
		})
	}
}

// BenchmarkDrainTo benchmarks bulk dequeues at different batch sizes.
func BenchmarkDrainTo(b *testing.B) {
	ctx := context.Background()

	for _, batch := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("batch_%d", batch), func(b *testing.B) {
			q, err := New[int](batch, batch)
			if err != nil {
				b.Fatal(err)
			}

			sink := make(SliceSink[int], 0, batch)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				for j := 0; j < batch; j++ {
					if _, err := q.Offer(ctx, j, 0); err != nil {
						b.Fatal(err)
					}
				}
				sink = sink[:0]
				b.StartTimer()

				n, err := q.DrainTo(ctx, &sink, 0)
				if err != nil {
					b.Fatal(err)
				}
				if n != batch {
					b.Fatalf("expected %d items, drained %d", batch, n)
				}
			}
		})
	}
}
