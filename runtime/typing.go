package runtime

import (
	"sync"
	"time"
)

// TypingWatchdog owns one cancellable timer per (sender, receiver) pair.
// A typing_start arms the timer; a typing_stop disarms it. When a stop is
// lost (sender crash, partition) the timer fires and the expire callback
// synthesizes the stop, so the receiver's indicator self-heals.
type TypingWatchdog struct {
	mu     sync.Mutex
	ttl    time.Duration
	timers map[string]*time.Timer
	expire func(senderID, receiverID string)
}

func NewTypingWatchdog(ttl time.Duration, expire func(senderID, receiverID string)) *TypingWatchdog {
	return &TypingWatchdog{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
		expire: expire,
	}
}

func pairTimerKey(senderID, receiverID string) string {
	// Direction matters here: A typing to B and B typing to A are
	// independent indicators, unlike the storage PairKey.
	return senderID + ">" + receiverID
}

// Touch arms or re-arms the expiry timer for the pair.
func (w *TypingWatchdog) Touch(senderID, receiverID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := pairTimerKey(senderID, receiverID)
	if timer, ok := w.timers[key]; ok {
		timer.Reset(w.ttl)
		return
	}
	w.timers[key] = time.AfterFunc(w.ttl, func() {
		w.mu.Lock()
		delete(w.timers, key)
		w.mu.Unlock()
		w.expire(senderID, receiverID)
	})
}

// Clear disarms the timer after an explicit typing_stop.
func (w *TypingWatchdog) Clear(senderID, receiverID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := pairTimerKey(senderID, receiverID)
	if timer, ok := w.timers[key]; ok {
		timer.Stop()
		delete(w.timers, key)
	}
}

// Stop disarms every pending timer. Used at shutdown.
func (w *TypingWatchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for key, timer := range w.timers {
		timer.Stop()
		delete(w.timers, key)
	}
}
