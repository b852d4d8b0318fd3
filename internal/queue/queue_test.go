package queue

import (
	"errors"
	"testing"
	"time"
)

func TestFIFOOrder(t *testing.T) {
	q := New[int](Options{})
	for i := 0; i < 10; i++ {
		if err := q.Push(i); err != nil {
			t.Fatalf("push: %v", err)
		}
	}
	for i := 0; i < 10; i++ {
		v, ok := q.Pop()
		if !ok || v != i {
			t.Fatalf("pop %d: got %d ok=%v", i, v, ok)
		}
	}
}

func TestPopBlocksUntilPush(t *testing.T) {
	q := New[string](Options{})
	got := make(chan string, 1)
	go func() {
		v, _ := q.Pop()
		got <- v
	}()
	time.Sleep(20 * time.Millisecond)
	if err := q.Push("x"); err != nil {
		t.Fatalf("push: %v", err)
	}
	select {
	case v := <-got:
		if v != "x" {
			t.Fatalf("got %q", v)
		}
	case <-time.After(time.Second):
		t.Fatal("pop did not wake")
	}
}

func TestShutdownTerminatesOneConsumer(t *testing.T) {
	q := New[int](Options{})
	q.PushShutdown()
	if _, ok := q.Pop(); ok {
		t.Fatal("expected shutdown element")
	}
}

func TestShutdownDoesNotCountAsPayload(t *testing.T) {
	q := New[int](Options{})
	_ = q.Push(1)
	q.PushShutdown()
	if q.Len() != 1 {
		t.Fatalf("len: got %d", q.Len())
	}
	if v, ok := q.Pop(); !ok || v != 1 {
		t.Fatalf("payload first: got %d ok=%v", v, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("sentinel second")
	}
}

func TestClearKeepsSentinels(t *testing.T) {
	q := New[int](Options{})
	_ = q.Push(1)
	_ = q.Push(2)
	q.PushShutdown()
	_ = q.Push(3)
	if dropped := q.Clear(); dropped != 3 {
		t.Fatalf("dropped: got %d", dropped)
	}
	if q.Len() != 0 {
		t.Fatalf("len after clear: %d", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("sentinel must survive clear")
	}
}

func TestRejectPolicy(t *testing.T) {
	q := New[int](Options{Capacity: 1, FullPolicy: Reject})
	if err := q.Push(1); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := q.Push(2); !errors.Is(err, ErrFull) {
		t.Fatalf("want ErrFull, got %v", err)
	}
	// sentinels bypass capacity
	q.PushShutdown()
}

func TestBlockPolicyUnblocksOnPop(t *testing.T) {
	q := New[int](Options{Capacity: 1, FullPolicy: Block})
	if err := q.Push(1); err != nil {
		t.Fatalf("push: %v", err)
	}
	done := make(chan struct{})
	go func() {
		_ = q.Push(2)
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("push should block while full")
	case <-time.After(20 * time.Millisecond):
	}
	if v, ok := q.Pop(); !ok || v != 1 {
		t.Fatalf("pop: got %d ok=%v", v, ok)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("push did not unblock")
	}
}

func TestClearUnblocksProducer(t *testing.T) {
	q := New[int](Options{Capacity: 1, FullPolicy: Block})
	_ = q.Push(1)
	done := make(chan struct{})
	go func() {
		_ = q.Push(2)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	q.Clear()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("clear did not unblock producer")
	}
}
