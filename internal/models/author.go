package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Author struct {
	Address         string          `json:"address"`
	Pseudonym       string          `json:"pseudonym,omitempty"`
	ReputationScore int64           `json:"reputationScore"`
	TotalDonations  decimal.Decimal `json:"totalDonations"`
	VotesCasted     int64           `json:"votesCasted"`
	IsZkVerified    bool            `json:"isZkVerified"`
	DelegatedTo     *string         `json:"delegatedTo"`
	Activity        []Activity      `json:"activity"`
	JoinedAt        time.Time       `json:"joinedAt"`
}

func (a *Author) clone() *Author {
	c := *a
	if a.DelegatedTo != nil {
		to := *a.DelegatedTo
		c.DelegatedTo = &to
	}
	c.Activity = make([]Activity, len(a.Activity))
	copy(c.Activity, a.Activity)
	return &c
}
