package eventbus

import "testing"

func TestPublishSubscribe(t *testing.T) {
	bus := New[string]()
	ch := bus.Subscribe()
	bus.Publish("rate-update")
	if v := <-ch; v != "rate-update" {
		t.Fatalf("expected rate-update got %v", v)
	}
	bus.Unsubscribe(ch)
}

func TestClose(t *testing.T) {
	bus := New[int]()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
}

func TestUnsubscribeAfterClose(t *testing.T) {
	bus := New[float64]()
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}

func TestPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := New[int]()
	ch := bus.Subscribe()
	for i := 0; i < 64; i++ {
		bus.Publish(i)
	}
	// buffer is 16; the rest must have been dropped without blocking
	if v := <-ch; v != 0 {
		t.Fatalf("expected first event got %v", v)
	}
}
