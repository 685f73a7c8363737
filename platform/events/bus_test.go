package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"outreach_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestInMemoryBus_DeliversToSubscribersInOrder(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))
	got := make(chan string, 2)

	bus.Subscribe("outreach.test", HandlerFunc(func(ctx context.Context, event Event) error {
		got <- "first"
		return nil
	}))
	bus.Subscribe("outreach.test", HandlerFunc(func(ctx context.Context, event Event) error {
		got <- "second"
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "outreach.test"})

	for _, want := range []string{"first", "second"} {
		select {
		case name := <-got:
			if name != want {
				t.Fatalf("expected handler %q, got %q", want, name)
			}
		case <-time.After(time.Second):
			t.Fatalf("handler %q never ran", want)
		}
	}
}

func TestInMemoryBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))
	ran := make(chan struct{}, 1)

	bus.Subscribe("outreach.test", HandlerFunc(func(ctx context.Context, event Event) error {
		return errors.New("handler failed")
	}))
	bus.Subscribe("outreach.test", HandlerFunc(func(ctx context.Context, event Event) error {
		ran <- struct{}{}
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "outreach.test"})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("second handler never ran after first handler error")
	}
}

func TestInMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "outreach.unheard"})
}
