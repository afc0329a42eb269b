package models

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const month = 30 * 24 * time.Hour

func TestSubscriptionStore_SubscribeTwiceResetsExpiry(t *testing.T) {
	s := NewSubscriptionStore(month)
	first := s.Subscribe("0xR", "0xA", t0)
	assert.Equal(t, t0.Add(month), first.Expiry)

	later := t0.Add(10 * 24 * time.Hour)
	second := s.Subscribe("0xR", "0xA", later)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, later.Add(month), second.Expiry)
	active := s.ListActive("0xR", later)
	require.Len(t, active, 1)
	assert.Equal(t, later.Add(month), active[0].Expiry)
}

func TestSubscriptionStore_UnsubscribeIdempotent(t *testing.T) {
	s := NewSubscriptionStore(month)
	s.Subscribe("0xR", "0xA", t0)

	assert.True(t, s.Unsubscribe("0xR", "0xA"))
	assert.False(t, s.Unsubscribe("0xR", "0xA"))
	assert.Zero(t, s.Len())
}

func TestSubscriptionStore_ExpiredHiddenBeforeSweep(t *testing.T) {
	s := NewSubscriptionStore(month)
	s.Subscribe("0xR", "0xA", t0)
	s.Subscribe("0xR", "0xB", t0.Add(5*24*time.Hour))

	now := t0.Add(month + time.Hour)
	active := s.ListActive("0xR", now)
	require.Len(t, active, 1)
	assert.Equal(t, "0xB", active[0].AuthorAddress)
	assert.False(t, s.IsActive("0xR", "0xA", now))
	assert.Equal(t, 1, s.CountActive(now))
	assert.Equal(t, 2, s.Len())
}

func TestSubscriptionStore_ExpiryBoundary(t *testing.T) {
	s := NewSubscriptionStore(month)
	sub := s.Subscribe("0xR", "0xA", t0)

	assert.True(t, s.IsActive("0xR", "0xA", sub.Expiry.Add(-time.Nanosecond)))
	assert.False(t, s.IsActive("0xR", "0xA", sub.Expiry))
	assert.Equal(t, 1, s.SweepExpired(sub.Expiry))
}

func TestSubscriptionStore_SweepExpired(t *testing.T) {
	s := NewSubscriptionStore(month)
	s.Subscribe("0xR", "0xA", t0)
	s.Subscribe("0xQ", "0xA", t0)
	s.Subscribe("0xR", "0xB", t0.Add(month))

	now := t0.Add(month + time.Minute)
	assert.Equal(t, 2, s.SweepExpired(now))
	assert.Equal(t, 1, s.Len())

	before := s.Snapshot()
	assert.Zero(t, s.SweepExpired(now))
	assert.Equal(t, before, s.Snapshot())
}

func TestSubscriptionStore_SweepKeepsRenewed(t *testing.T) {
	s := NewSubscriptionStore(month)
	s.Subscribe("0xR", "0xA", t0)
	now := t0.Add(month + time.Minute)
	s.Subscribe("0xR", "0xA", now)

	assert.Zero(t, s.SweepExpired(now))
	assert.True(t, s.IsActive("0xR", "0xA", now))
}

func TestSubscriptionStore_ConcurrentSweepAndRenew(t *testing.T) {
	s := NewSubscriptionStore(month)
	for _, author := range []string{"0xA", "0xB", "0xC", "0xD"} {
		s.Subscribe("0xR", author, t0)
	}
	now := t0.Add(month + time.Minute)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Subscribe("0xR", "0xA", now)
	}()
	go func() {
		defer wg.Done()
		s.SweepExpired(now)
	}()
	wg.Wait()
	s.SweepExpired(now)

	active := s.ListActive("0xR", now)
	require.Len(t, active, 1)
	assert.Equal(t, "0xA", active[0].AuthorAddress)
}

func TestSubscriptionStore_SnapshotRestore(t *testing.T) {
	s := NewSubscriptionStore(month)
	s.Subscribe("0xR", "0xB", t0)
	s.Subscribe("0xQ", "0xA", t0)

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "0xQ", snap[0].SubscriberAddress)

	restored := NewSubscriptionStore(month)
	restored.Restore(snap)
	assert.Equal(t, snap, restored.Snapshot())
}
