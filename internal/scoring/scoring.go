package scoring

import "github.com/shopspring/decimal"

var (
	verificationWeight = decimal.NewFromFloat(1.5)
	reputationDivisor  = decimal.NewFromInt(10)
	donationDivisor    = decimal.NewFromInt(20)
	donationRepDivisor = decimal.NewFromInt(10)
	bpsDenominator     = decimal.NewFromInt(10000)
)

// ImpactScore ranks an article by its verification count, the author's
// reputation and the donations the author has received:
//
//	round(1.5*verifications + reputation/10 + donations/20)
//
// Ties round away from zero.
func ImpactScore(verifications, reputation int64, totalDonations decimal.Decimal) int64 {
	score := verificationWeight.Mul(decimal.NewFromInt(verifications)).
		Add(decimal.NewFromInt(reputation).Div(reputationDivisor)).
		Add(totalDonations.Div(donationDivisor))
	return score.Round(0).IntPart()
}

// DonationSplit returns the protocol fee and the part that reaches the author.
// No fee is taken unless the donor opted to support the protocol.
func DonationSplit(amount decimal.Decimal, feeBps int64, supportProtocol bool) (fee, authorAmount decimal.Decimal) {
	fee = decimal.Zero
	if supportProtocol && feeBps > 0 {
		fee = amount.Mul(decimal.NewFromInt(feeBps)).Div(bpsDenominator)
	}
	return fee, amount.Sub(fee)
}

// DonationReputation is the reputation an author gains from a net donation.
func DonationReputation(authorAmount decimal.Decimal) int64 {
	return authorAmount.Div(donationRepDivisor).Round(0).IntPart()
}

type FeedOrder string

const (
	FeedLatest     FeedOrder = "latest"
	FeedTrust      FeedOrder = "trust"
	FeedReputation FeedOrder = "reputation"
	FeedTrending   FeedOrder = "trending"
)

// ParseFeedOrder maps a query value to a FeedOrder. Empty means latest.
func ParseFeedOrder(s string) (FeedOrder, bool) {
	switch FeedOrder(s) {
	case "", FeedLatest:
		return FeedLatest, true
	case FeedTrust, FeedReputation, FeedTrending:
		return FeedOrder(s), true
	}
	return "", false
}

// FeedKey is what the feed compares for one article.
type FeedKey struct {
	ID            int64
	PublishedAt   int64
	Impact        int64
	Reputation    int64
	Verifications int64
}

// Before reports whether a sorts ahead of b under order. Every order is
// descending; equal keys fall back to the newer id.
func (o FeedOrder) Before(a, b FeedKey) bool {
	var ka, kb int64
	switch o {
	case FeedTrust:
		ka, kb = a.Impact, b.Impact
	case FeedReputation:
		ka, kb = a.Reputation, b.Reputation
	case FeedTrending:
		ka, kb = a.Verifications, b.Verifications
	default:
		ka, kb = a.PublishedAt, b.PublishedAt
	}
	if ka != kb {
		return ka > kb
	}
	return a.ID > b.ID
}
