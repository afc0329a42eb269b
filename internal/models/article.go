package models

import (
	"time"

	"clarity/internal/scoring"

	"github.com/shopspring/decimal"
)

type Flag struct {
	Staker    string          `json:"staker"`
	Reason    string          `json:"reason"`
	Stake     decimal.Decimal `json:"stake"`
	FlaggedAt time.Time       `json:"flaggedAt"`
}

type Article struct {
	ID            int64     `json:"id"`
	AuthorAddress string    `json:"authorAddress"`
	Title         string    `json:"title"`
	Tags          []string  `json:"tags"`
	Language      string    `json:"language,omitempty"`
	Category      string    `json:"category,omitempty"`
	PublishedAt   time.Time `json:"timestamp"`
	Verifications int64     `json:"verifications"`
	IsFlagged     bool      `json:"isFlagged"`
	Flags         []Flag    `json:"flags"`
	IsWatermarked bool      `json:"isWatermarked"`
	ContentCID    string    `json:"contentCid"`
	MetadataCID   string    `json:"metadataCid"`
	TxHash        string    `json:"txHash,omitempty"`
}

// ImpactScore is derived on every call; author may be nil for an orphaned article.
func (a *Article) ImpactScore(author *Author) int64 {
	if author == nil {
		return scoring.ImpactScore(a.Verifications, 0, decimal.Zero)
	}
	return scoring.ImpactScore(a.Verifications, author.ReputationScore, author.TotalDonations)
}

func (a *Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (a *Article) clone() *Article {
	c := *a
	c.Tags = append([]string(nil), a.Tags...)
	c.Flags = append([]Flag(nil), a.Flags...)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Flags == nil {
		c.Flags = []Flag{}
	}
	return &c
}
