package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStore_SaveAssignsID(t *testing.T) {
	s := NewDraftStore()
	d := s.Save(&Draft{AuthorAddress: "0xA", Title: "first"}, t0)

	require.NotEmpty(t, d.ID)
	assert.Equal(t, t0, d.LastSaved)

	got, ok := s.Get(d.ID, "0xA")
	require.True(t, ok)
	assert.Equal(t, "first", got.Title)

	_, ok = s.Get(d.ID, "0xB")
	assert.False(t, ok)
}

func TestDraftStore_SaveReplaces(t *testing.T) {
	s := NewDraftStore()
	d := s.Save(&Draft{AuthorAddress: "0xA", Title: "first"}, t0)
	d.Title = "second"
	s.Save(d, t0.Add(time.Minute))

	list := s.List("0xA")
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, t0.Add(time.Minute), list[0].LastSaved)
}

func TestDraftStore_ListNewestFirst(t *testing.T) {
	s := NewDraftStore()
	old := s.Save(&Draft{AuthorAddress: "0xA", Title: "old"}, t0)
	recent := s.Save(&Draft{AuthorAddress: "0xA", Title: "new"}, t0.Add(time.Hour))
	s.Save(&Draft{AuthorAddress: "0xB", Title: "other"}, t0)

	list := s.List("0xA")
	require.Len(t, list, 2)
	assert.Equal(t, recent.ID, list[0].ID)
	assert.Equal(t, old.ID, list[1].ID)
	assert.Empty(t, s.List("0xC"))
}

func TestDraftStore_DeleteIdempotent(t *testing.T) {
	s := NewDraftStore()
	d := s.Save(&Draft{AuthorAddress: "0xA"}, t0)
	s.Delete(d.ID, "0xA")
	s.Delete(d.ID, "0xA")
	assert.Empty(t, s.List("0xA"))
}

func TestDraftStore_SnapshotRestore(t *testing.T) {
	s := NewDraftStore()
	s.Save(&Draft{AuthorAddress: "0xA", Tags: []string{"x"}}, t0)
	s.Save(&Draft{AuthorAddress: "0xB"}, t0)

	restored := NewDraftStore()
	restored.Restore(s.Snapshot())
	assert.Equal(t, s.Snapshot(), restored.Snapshot())
}
