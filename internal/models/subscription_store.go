package models

import (
	"sort"
	"sync"
	"time"
)

type Subscription struct {
	SubscriberAddress string    `json:"subscriberAddress"`
	AuthorAddress     string    `json:"authorAddress"`
	Expiry            time.Time `json:"expiry"`
}

// IsActive reports whether the subscription is still running at now.
func (s Subscription) IsActive(now time.Time) bool {
	return s.Expiry.After(now)
}

type subscriptionKey struct {
	subscriber string
	author     string
}

// SubscriptionStore keeps at most one record per (subscriber, author) pair.
// Readers never see expired records, whether or not the keeper has swept them.
type SubscriptionStore struct {
	mu      sync.RWMutex
	records map[subscriptionKey]time.Time
	ttl     time.Duration
}

func NewSubscriptionStore(ttl time.Duration) *SubscriptionStore {
	return &SubscriptionStore{
		records: make(map[subscriptionKey]time.Time),
		ttl:     ttl,
	}
}

// Subscribe creates or renews the pair. Renewal restarts the full window from
// now instead of extending the previous expiry.
func (s *SubscriptionStore) Subscribe(subscriber, author string, now time.Time) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry := now.Add(s.ttl)
	s.records[subscriptionKey{subscriber: subscriber, author: author}] = expiry
	return Subscription{SubscriberAddress: subscriber, AuthorAddress: author, Expiry: expiry}
}

// Unsubscribe removes the pair if present and reports whether it existed.
func (s *SubscriptionStore) Unsubscribe(subscriber, author string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := subscriptionKey{subscriber: subscriber, author: author}
	if _, ok := s.records[key]; !ok {
		return false
	}
	delete(s.records, key)
	return true
}

// ListActive returns the subscriber's records with expiry after now, ordered
// by author address.
func (s *SubscriptionStore) ListActive(subscriber string, now time.Time) []Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Subscription, 0)
	for key, expiry := range s.records {
		if key.subscriber != subscriber || !expiry.After(now) {
			continue
		}
		result = append(result, Subscription{SubscriberAddress: key.subscriber, AuthorAddress: key.author, Expiry: expiry})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AuthorAddress < result[j].AuthorAddress
	})
	return result
}

func (s *SubscriptionStore) IsActive(subscriber, author string, now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expiry, ok := s.records[subscriptionKey{subscriber: subscriber, author: author}]
	return ok && expiry.After(now)
}

// CountActive counts records across all subscribers with expiry after now.
func (s *SubscriptionStore) CountActive(now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, expiry := range s.records {
		if expiry.After(now) {
			n++
		}
	}
	return n
}

// Len counts stored records, including expired ones the keeper has not yet removed.
func (s *SubscriptionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// SweepExpired deletes every record with expiry <= now and returns how many
// were removed. Expiry is read under the write lock, so a renewal that landed
// before the sweep acquired the lock is never lost.
func (s *SubscriptionStore) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, expiry := range s.records {
		if !expiry.After(now) {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}

func (s *SubscriptionStore) Snapshot() []Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Subscription, 0, len(s.records))
	for key, expiry := range s.records {
		result = append(result, Subscription{SubscriberAddress: key.subscriber, AuthorAddress: key.author, Expiry: expiry})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SubscriberAddress != result[j].SubscriberAddress {
			return result[i].SubscriberAddress < result[j].SubscriberAddress
		}
		return result[i].AuthorAddress < result[j].AuthorAddress
	})
	return result
}

func (s *SubscriptionStore) Restore(subs []Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[subscriptionKey]time.Time, len(subs))
	for _, sub := range subs {
		s.records[subscriptionKey{subscriber: sub.SubscriberAddress, author: sub.AuthorAddress}] = sub.Expiry
	}
}
