package stats

import (
	"testing"
	"time"
)

func TestSnapshotCopyIsIsolated(t *testing.T) {
	a := New()

	a.mu.Lock()
	a.applyBookingSlice(BookingSlice{
		TodaysBookings: 2,
		RevenueToday:   1300,
		StylistStats:   []StylistStat{{ID: "s1", Name: "Sarah", Count: 1, Revenue: 500}},
	})
	a.mu.Unlock()

	snapshot, validated := a.Snapshot()
	if validated {
		t.Error("aggregator should not report validated before RunValidation")
	}
	if snapshot.RevenueToday != 1300 || snapshot.TodaysBookings != 2 {
		t.Errorf("snapshot = %+v, want applied slice values", snapshot)
	}

	// Mutating the returned copy must not affect the aggregator's state.
	snapshot.StylistStats[0].Revenue = 0
	again, _ := a.Snapshot()
	if again.StylistStats[0].Revenue != 500 {
		t.Error("snapshot copy shares stylist stats with internal state")
	}
}

func TestNotifySignalsCoalesce(t *testing.T) {
	a := New()

	// Without a running stream draining the channel, repeated pings must
	// not block.
	for i := 0; i < 10; i++ {
		a.NotifyBookingsChanged()
	}
	if len(a.bookingsCh) != 1 {
		t.Errorf("bookings channel depth = %d, want 1 coalesced signal", len(a.bookingsCh))
	}
}

func TestSubscribeReceivesPublishedSnapshots(t *testing.T) {
	a := New()
	ch := a.Subscribe()
	defer a.Unsubscribe(ch)

	a.mu.Lock()
	a.applyBookingSlice(BookingSlice{RevenueToday: 800})
	a.mu.Unlock()
	a.publish()

	select {
	case snapshot := <-ch:
		if snapshot.RevenueToday != 800 {
			t.Errorf("published RevenueToday = %v, want 800", snapshot.RevenueToday)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot published to subscriber")
	}
}
