package bus

import (
	"errors"
	"testing"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got any
	_, err := b.Subscribe("test.event", func(e Event) error {
		got = e.Data()
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(NewEvent("test.event", "tester", 123)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got != 123 {
		t.Fatalf("expected payload 123, got %v", got)
	}
}

func TestPublishAggregatesHandlerErrors(t *testing.T) {
	b := New()
	handlerErr := errors.New("fail")
	if _, err := b.Subscribe("x", func(e Event) error { return handlerErr }); err != nil {
		t.Fatalf("sub: %v", err)
	}
	if _, err := b.Subscribe("x", func(e Event) error { return nil }); err != nil {
		t.Fatalf("sub: %v", err)
	}
	err := b.Publish(NewEvent("x", "src", nil))
	if !errors.Is(err, handlerErr) {
		t.Fatalf("expected joined handler error, got %v", err)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	calls := 0
	sub, err := b.Subscribe("y", func(e Event) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if err = b.Publish(NewEvent("y", "src", nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err = sub.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if sub.IsActive() {
		t.Fatal("subscription still active after cancel")
	}
	if err = b.Publish(NewEvent("y", "src", nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 delivery, got %d", calls)
	}
}

func TestUnsubscribeNilIsNoop(t *testing.T) {
	b := New()
	if err := b.Unsubscribe(nil); err != nil {
		t.Fatalf("unsubscribe nil: %v", err)
	}
}

func TestPublishNoSubscribers(t *testing.T) {
	b := New()
	if err := b.Publish(NewEvent("nobody.listens", "src", nil)); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}

func TestNilHandlerRejected(t *testing.T) {
	b := New()
	if _, err := b.Subscribe("z", nil); err == nil {
		t.Fatal("expected error for nil handler")
	}
}
