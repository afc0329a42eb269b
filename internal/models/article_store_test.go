package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publish(s *ArticleStore, author string, tags ...string) *Article {
	return s.Create(&Article{AuthorAddress: author, Title: "t", Tags: tags, PublishedAt: t0})
}

func TestArticleStore_CreateAssignsIDsAndResetsState(t *testing.T) {
	s := NewArticleStore()
	a := s.Create(&Article{
		ID: 77, AuthorAddress: "0xA", Verifications: 5, IsFlagged: true,
		Flags: []Flag{{Staker: "x"}},
	})
	b := publish(s, "0xA")

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Zero(t, a.Verifications)
	assert.False(t, a.IsFlagged)
	assert.NotNil(t, a.Flags)
	assert.Empty(t, a.Flags)
}

func TestArticleStore_ListByTag(t *testing.T) {
	s := NewArticleStore()
	publish(s, "0xA", "politics", "europe")
	publish(s, "0xB", "tech")
	publish(s, "0xA", "politics")

	all := s.List("")
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID)

	politics := s.List("politics")
	require.Len(t, politics, 2)
	assert.Equal(t, int64(3), politics[0].ID)
	assert.Equal(t, int64(1), politics[1].ID)

	assert.Empty(t, s.List("sports"))
	assert.Equal(t, []string{"europe", "politics", "tech"}, s.Tags())
}

func TestArticleStore_Delete(t *testing.T) {
	s := NewArticleStore()
	a := publish(s, "0xA", "tech")
	s.Delete(a.ID)
	s.Delete(a.ID)

	_, ok := s.Get(a.ID)
	assert.False(t, ok)
	assert.Empty(t, s.Tags())
}

func TestArticleStore_Verify(t *testing.T) {
	s := NewArticleStore()
	a := publish(s, "0xA")

	_, err := s.Verify(a.ID)
	require.NoError(t, err)
	got, err := s.Verify(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Verifications)

	_, err = s.Verify(99)
	assert.True(t, IsNotFound(err))
}

func TestArticleStore_VerifyFlaggedRejected(t *testing.T) {
	s := NewArticleStore()
	a := publish(s, "0xA")
	_, err := s.Flag(a.ID, Flag{Staker: "0xS", Reason: "fabricated", Stake: decimal.NewFromInt(500)})
	require.NoError(t, err)

	_, err = s.Verify(a.ID)
	assert.True(t, IsValidation(err))
	got, _ := s.Get(a.ID)
	assert.Zero(t, got.Verifications)
}

func TestArticleStore_FlagAppends(t *testing.T) {
	s := NewArticleStore()
	a := publish(s, "0xA")
	_, _ = s.Flag(a.ID, Flag{Staker: "0xS", Reason: "one"})
	got, err := s.Flag(a.ID, Flag{Staker: "0xT", Reason: "two"})
	require.NoError(t, err)

	assert.True(t, got.IsFlagged)
	require.Len(t, got.Flags, 2)
	assert.Equal(t, "one", got.Flags[0].Reason)
	assert.Equal(t, "two", got.Flags[1].Reason)

	_, err = s.Flag(42, Flag{})
	assert.True(t, IsNotFound(err))
}

func TestArticleStore_SnapshotRestore(t *testing.T) {
	s := NewArticleStore()
	publish(s, "0xA", "tech")
	publish(s, "0xB", "tech", "ai")
	s.Delete(1)

	articles, next := s.Snapshot()
	assert.Equal(t, int64(3), next)

	restored := NewArticleStore()
	restored.Restore(articles, next)
	assert.Equal(t, s.List(""), restored.List(""))
	assert.Equal(t, []string{"ai", "tech"}, restored.Tags())

	c := publish(restored, "0xC")
	assert.Equal(t, int64(3), c.ID)
}

func TestArticle_ImpactScore(t *testing.T) {
	a := &Article{Verifications: 284}
	author := &Author{ReputationScore: 2150, TotalDonations: decimal.NewFromInt(8500)}
	assert.Equal(t, int64(1066), a.ImpactScore(author))
	assert.Equal(t, int64(426), a.ImpactScore(nil))
}
