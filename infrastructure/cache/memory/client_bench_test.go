package memory

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func BenchmarkMemoryCache_GetPreview(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()
	payload := make([]byte, 64<<10)

	for i := 0; i < 100; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("preview:https://example.com/%d", i), payload, time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, fmt.Sprintf("preview:https://example.com/%d", i%100))
	}
}

func BenchmarkMemoryCache_SetParallel(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()
	payload := []byte(`{"feed":{"title":"bench"}}`)

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = cache.Set(ctx, fmt.Sprintf("key-%d", i%1000), payload, time.Hour)
			i++
		}
	})
}
