package game

import (
	"log/slog"
	"testing"
)

func TestHubPublishReachesSubscribers(t *testing.T) {
	hub := NewHub(slog.Default())

	sub := hub.Subscribe(1)
	other := hub.Subscribe(2)

	hub.Publish(1, []Event{{Type: EventDayAdvanced, Value: 2}})

	select {
	case batch := <-sub.C:
		if len(batch) != 1 || batch[0].Type != EventDayAdvanced {
			t.Errorf("batch = %+v", batch)
		}
	default:
		t.Fatal("subscriber received nothing")
	}

	select {
	case batch := <-other.C:
		t.Fatalf("player 2 received player 1's events: %+v", batch)
	default:
	}
}

func TestHubPublishEmptyBatchIsNoOp(t *testing.T) {
	hub := NewHub(slog.Default())
	sub := hub.Subscribe(1)

	hub.Publish(1, nil)

	select {
	case batch := <-sub.C:
		t.Fatalf("empty publish delivered %+v", batch)
	default:
	}
}

func TestHubDropsBatchesForSlowSubscriber(t *testing.T) {
	hub := NewHub(slog.Default())
	sub := hub.Subscribe(1)

	// fill the buffer, then one more that must be dropped without blocking
	for i := 0; i < subscriberBuffer+1; i++ {
		hub.Publish(1, []Event{{Type: EventMissionCompleted, Value: i}})
	}

	received := 0
	for {
		select {
		case <-sub.C:
			received++
			continue
		default:
		}
		break
	}
	if received != subscriberBuffer {
		t.Errorf("received %d batches, want the buffer size %d", received, subscriberBuffer)
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(slog.Default())
	sub := hub.Subscribe(1)

	hub.Unsubscribe(sub)

	if _, open := <-sub.C; open {
		t.Fatal("channel should be closed after unsubscribe")
	}

	// publishing to a player with no subscribers must not panic
	hub.Publish(1, []Event{{Type: EventPolicyExpired}})
}
