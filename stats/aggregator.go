package stats

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/beautyexpress/salon_backend/database"
	"github.com/beautyexpress/salon_backend/models"
)

// firstFetchTimeout bounds each stream's first recompute so the dashboard
// never hangs on a dead stream. A timeout forces that stream's fields to
// defaults; the stream itself keeps running.
const firstFetchTimeout = 5 * time.Second

// Aggregator maintains the live dashboard snapshot. Three independent
// streams (bookings, conversations, clients) each own a disjoint set of
// snapshot fields and recompute them from a full collection fetch whenever
// a handler signals a change. Field ownership is what makes the concurrent
// merges safe: no stream ever writes another stream's fields.
type Aggregator struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	validated bool

	bookingsCh      chan struct{}
	conversationsCh chan struct{}
	clientsCh       chan struct{}
	stop            chan struct{}
	startOnce       sync.Once

	subMu       sync.Mutex
	subscribers map[chan Snapshot]struct{}
}

// Default is the aggregator wired into the handlers, mirroring the
// package-global database handle.
var Default = New()

func New() *Aggregator {
	return &Aggregator{
		bookingsCh:      make(chan struct{}, 1),
		conversationsCh: make(chan struct{}, 1),
		clientsCh:       make(chan struct{}, 1),
		stop:            make(chan struct{}),
		subscribers:     make(map[chan Snapshot]struct{}),
	}
}

// RunValidation performs the one-time synchronous pass: bulk-fetch every
// collection, compute the full snapshot, and mark the aggregator
// validated. The continuous streams must not start before this completes,
// otherwise partial reads would race the initial snapshot.
func (a *Aggregator) RunValidation() error {
	log.Println("🔍 Running system validation...")

	var bookings []models.Booking
	if err := database.DB.Find(&bookings).Error; err != nil {
		return err
	}
	var stylists []models.Stylist
	if err := database.DB.Find(&stylists).Error; err != nil {
		return err
	}
	var conversations []models.Conversation
	if err := database.DB.Find(&conversations).Error; err != nil {
		return err
	}
	var clientCount int64
	if err := database.DB.Model(&models.Client{}).Count(&clientCount).Error; err != nil {
		return err
	}

	slice := ComputeBookingSliceWithRoster(bookings, stylists, time.Now())

	a.mu.Lock()
	a.applyBookingSlice(slice)
	a.snapshot.PendingMessages = ComputePendingMessages(conversations)
	a.snapshot.ActiveCustomers = int(clientCount)
	a.snapshot.LastUpdate = time.Now()
	a.validated = true
	snapshot := a.copySnapshotLocked()
	a.mu.Unlock()

	log.Printf("✅ System validation complete: %d bookings, %d messages, %d customers, Ksh%.0f revenue",
		snapshot.TodaysBookings, snapshot.PendingMessages, snapshot.ActiveCustomers, snapshot.RevenueToday)
	return nil
}

// Start runs the validation pass and then launches the three streams.
func (a *Aggregator) Start() error {
	if err := a.RunValidation(); err != nil {
		return err
	}
	a.startOnce.Do(func() {
		go a.runStream("bookings", a.bookingsCh, a.recomputeBookings, a.resetBookings)
		go a.runStream("conversations", a.conversationsCh, a.recomputeConversations, a.resetConversations)
		go a.runStream("clients", a.clientsCh, a.recomputeClients, a.resetClients)
		log.Println("🔄 Stats streams started")
	})
	return nil
}

func (a *Aggregator) Stop() {
	close(a.stop)
}

// Snapshot returns a copy of the current metrics and whether the initial
// validation pass has completed. Callers must treat an unvalidated
// snapshot as a loading state.
func (a *Aggregator) Snapshot() (Snapshot, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.copySnapshotLocked(), a.validated
}

// NotifyBookingsChanged signals the bookings stream. Sends coalesce: a
// burst of writes triggers at most one queued recompute.
func (a *Aggregator) NotifyBookingsChanged() { signal(a.bookingsCh) }

func (a *Aggregator) NotifyConversationsChanged() { signal(a.conversationsCh) }

func (a *Aggregator) NotifyClientsChanged() { signal(a.clientsCh) }

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Subscribe registers a snapshot feed for dashboard streaming. Slow
// subscribers miss intermediate snapshots rather than blocking the streams.
func (a *Aggregator) Subscribe() chan Snapshot {
	ch := make(chan Snapshot, 4)
	a.subMu.Lock()
	a.subscribers[ch] = struct{}{}
	a.subMu.Unlock()
	return ch
}

func (a *Aggregator) Unsubscribe(ch chan Snapshot) {
	a.subMu.Lock()
	delete(a.subscribers, ch)
	a.subMu.Unlock()
}

// runStream services one collection's change channel. The first recompute
// runs under the startup deadline; later ones take as long as they take.
// Recompute errors leave the owned fields stale, never zeroed: the policy
// is degrade, don't crash.
func (a *Aggregator) runStream(name string, ch chan struct{}, recompute func(context.Context) error, reset func()) {
	ctx, cancel := context.WithTimeout(context.Background(), firstFetchTimeout)
	if err := recompute(ctx); err != nil {
		log.Printf("%s stream: initial fetch failed, forcing defaults: %v", name, err)
		reset()
	}
	cancel()

	for {
		select {
		case <-a.stop:
			return
		case <-ch:
			if err := recompute(context.Background()); err != nil {
				log.Printf("%s stream error: %v", name, err)
			}
		}
	}
}

func (a *Aggregator) recomputeBookings(ctx context.Context) error {
	var bookings []models.Booking
	if err := database.DB.WithContext(ctx).Find(&bookings).Error; err != nil {
		return err
	}
	slice := ComputeBookingSlice(bookings, time.Now())

	a.mu.Lock()
	a.applyBookingSlice(slice)
	a.snapshot.LastUpdate = time.Now()
	a.mu.Unlock()

	a.publish()
	return nil
}

func (a *Aggregator) recomputeConversations(ctx context.Context) error {
	var conversations []models.Conversation
	if err := database.DB.WithContext(ctx).Find(&conversations).Error; err != nil {
		return err
	}
	pending := ComputePendingMessages(conversations)

	a.mu.Lock()
	a.snapshot.PendingMessages = pending
	a.snapshot.LastUpdate = time.Now()
	a.mu.Unlock()

	a.publish()
	return nil
}

func (a *Aggregator) recomputeClients(ctx context.Context) error {
	var count int64
	if err := database.DB.WithContext(ctx).Model(&models.Client{}).Count(&count).Error; err != nil {
		return err
	}

	a.mu.Lock()
	a.snapshot.ActiveCustomers = int(count)
	a.snapshot.LastUpdate = time.Now()
	a.mu.Unlock()

	a.publish()
	return nil
}

func (a *Aggregator) resetBookings() {
	a.mu.Lock()
	a.applyBookingSlice(BookingSlice{StylistStats: []StylistStat{}})
	a.snapshot.LastUpdate = time.Now()
	a.mu.Unlock()
	a.publish()
}

func (a *Aggregator) resetConversations() {
	a.mu.Lock()
	a.snapshot.PendingMessages = 0
	a.snapshot.LastUpdate = time.Now()
	a.mu.Unlock()
	a.publish()
}

func (a *Aggregator) resetClients() {
	a.mu.Lock()
	a.snapshot.ActiveCustomers = 0
	a.snapshot.LastUpdate = time.Now()
	a.mu.Unlock()
	a.publish()
}

func (a *Aggregator) applyBookingSlice(slice BookingSlice) {
	a.snapshot.TodaysBookings = slice.TodaysBookings
	a.snapshot.RevenueToday = slice.RevenueToday
	a.snapshot.MpesaCount = slice.MpesaCount
	a.snapshot.CashCount = slice.CashCount
	a.snapshot.TotalPayments = slice.TotalPayments
	a.snapshot.StylistStats = slice.StylistStats
}

func (a *Aggregator) copySnapshotLocked() Snapshot {
	snapshot := a.snapshot
	snapshot.StylistStats = append([]StylistStat(nil), a.snapshot.StylistStats...)
	return snapshot
}

func (a *Aggregator) publish() {
	a.mu.RLock()
	snapshot := a.copySnapshotLocked()
	a.mu.RUnlock()

	a.subMu.Lock()
	for ch := range a.subscribers {
		select {
		case ch <- snapshot:
		default:
		}
	}
	a.subMu.Unlock()
}
