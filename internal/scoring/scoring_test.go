package scoring

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestImpactScore_ReferenceArticle(t *testing.T) {
	// 1.5*284 + 2150/10 + 8500/20 = 426 + 215 + 425
	assert.Equal(t, int64(1066), ImpactScore(284, 2150, decimal.NewFromInt(8500)))
}

func TestImpactScore_NoDonations(t *testing.T) {
	assert.Equal(t, int64(10), ImpactScore(0, 100, decimal.Zero))
	assert.Equal(t, int64(10), ImpactScore(0, 100, decimal.Decimal{}))
}

func TestImpactScore_RoundsHalfUp(t *testing.T) {
	// 1.5 + 10 = 11.5
	assert.Equal(t, int64(12), ImpactScore(1, 100, decimal.Zero))
	// 0 + 10.4 + 0 = 10.4
	assert.Equal(t, int64(10), ImpactScore(0, 104, decimal.Zero))
	// 3 + 10 + 0.45 = 13.45
	assert.Equal(t, int64(13), ImpactScore(2, 100, decimal.NewFromInt(9)))
}

func TestImpactScore_Deterministic(t *testing.T) {
	a := ImpactScore(17, 1540, decimal.NewFromInt(3500))
	b := ImpactScore(17, 1540, decimal.NewFromInt(3500))
	assert.Equal(t, a, b)
	// 25.5 + 154 + 175 = 354.5
	assert.Equal(t, int64(355), a)
}

func TestDonationSplit(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		feeBps     int64
		support    bool
		wantFee    string
		wantAuthor string
	}{
		{"ten percent", 100, 1000, true, "10", "90"},
		{"opted out", 100, 1000, false, "0", "100"},
		{"zero fee", 100, 0, true, "0", "100"},
		{"fractional fee", 55, 250, true, "1.375", "53.625"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, author := DonationSplit(decimal.NewFromInt(tt.amount), tt.feeBps, tt.support)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.wantFee)), "fee %s", fee)
			assert.True(t, author.Equal(decimal.RequireFromString(tt.wantAuthor)), "author %s", author)
		})
	}
}

func TestDonationReputation(t *testing.T) {
	assert.Equal(t, int64(9), DonationReputation(decimal.NewFromInt(90)))
	assert.Equal(t, int64(10), DonationReputation(decimal.NewFromInt(95)))
	assert.Equal(t, int64(9), DonationReputation(decimal.NewFromInt(94)))
	assert.Equal(t, int64(0), DonationReputation(decimal.NewFromInt(4)))
}

func TestParseFeedOrder(t *testing.T) {
	o, ok := ParseFeedOrder("")
	assert.True(t, ok)
	assert.Equal(t, FeedLatest, o)

	o, ok = ParseFeedOrder("trending")
	assert.True(t, ok)
	assert.Equal(t, FeedTrending, o)

	_, ok = ParseFeedOrder("random")
	assert.False(t, ok)
}

func TestFeedOrder_Before(t *testing.T) {
	older := FeedKey{ID: 1, PublishedAt: 100, Impact: 50, Reputation: 300, Verifications: 9}
	newer := FeedKey{ID: 2, PublishedAt: 200, Impact: 80, Reputation: 100, Verifications: 9}

	assert.True(t, FeedLatest.Before(newer, older))
	assert.True(t, FeedTrust.Before(newer, older))
	assert.True(t, FeedReputation.Before(older, newer))
	// equal verifications fall back to the newer id
	assert.True(t, FeedTrending.Before(newer, older))
	assert.False(t, FeedTrending.Before(older, newer))
}
