package pool

import (
	"bytes"
	"sync"
	"testing"
)

func TestPool_Basic(t *testing.T) {
	pool := NewPool(func() *int {
		x := 42
		return &x
	})

	obj1 := pool.Get()
	if *obj1 != 42 {
		t.Errorf("Expected 42, got %d", *obj1)
	}

	*obj1 = 100
	pool.Put(obj1)

	// Same goroutine, no GC in between: the object comes back.
	obj2 := pool.Get()
	if *obj2 != 100 {
		t.Errorf("Expected reused object with value 100, got %d", *obj2)
	}
}

func TestPool_WithReset(t *testing.T) {
	resetCalled := false
	pool := NewPoolWithReset(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		func(b *bytes.Buffer) {
			b.Reset()
			resetCalled = true
		},
	)

	buf := pool.Get()
	buf.WriteString("scratch")
	pool.Put(buf)

	buf2 := pool.Get()
	if !resetCalled {
		t.Error("Reset function was not called")
	}
	if buf2.Len() != 0 {
		t.Errorf("Expected empty buffer after reset, got length %d", buf2.Len())
	}
}

func TestPool_PutNil(t *testing.T) {
	pool := NewPool(func() *int {
		x := 0
		return &x
	})
	pool.Put(nil) // must not panic

	if obj := pool.Get(); obj == nil {
		t.Error("Expected Get to create an object")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPoolWithReset(
		func() *bytes.Buffer { return new(bytes.Buffer) },
		func(b *bytes.Buffer) { b.Reset() },
	)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				buf := pool.Get()
				if buf.Len() != 0 {
					t.Error("Expected reset buffer")
					return
				}
				buf.WriteString("data")
				pool.Put(buf)
			}
		}()
	}
	wg.Wait()
}
