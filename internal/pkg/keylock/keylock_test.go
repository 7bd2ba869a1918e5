package keylock

import (
	"errors"
	"sync"
	"testing"
)

func TestNew_DefaultShards(t *testing.T) {
	tests := []struct {
		name   string
		shards int
		want   int
	}{
		{"explicit size", 16, 16},
		{"zero falls back", 0, DefaultShards},
		{"negative falls back", -5, DefaultShards},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kl := New(tt.shards)
			if len(kl.shards) != tt.want {
				t.Errorf("shards = %d, want %d", len(kl.shards), tt.want)
			}
		})
	}
}

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := New(8)

	const iterations = 1000
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				kl.Lock("gemeente utrecht|organization")
				counter++
				kl.Unlock("gemeente utrecht|organization")
			}
		}()
	}
	wg.Wait()

	if counter != 4*iterations {
		t.Errorf("counter = %d, want %d", counter, 4*iterations)
	}
}

func TestKeyLock_WithLock(t *testing.T) {
	kl := New(8)

	wantErr := errors.New("boom")
	if err := kl.WithLock("key", func() error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("WithLock error = %v, want %v", err, wantErr)
	}

	// Lock must be released after WithLock, even on error.
	done := make(chan struct{})
	go func() {
		kl.Lock("key")
		kl.Unlock("key")
		close(done)
	}()
	<-done
}
