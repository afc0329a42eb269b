package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ActivityKind string

const (
	ActivityJoined    ActivityKind = "joined"
	ActivityPublished ActivityKind = "publish"
	ActivityDonated   ActivityKind = "donation"
	ActivityVoted     ActivityKind = "vote"
)

// Activity is one entry of an author's append-only log. Only the fields of
// its Kind are populated.
type Activity struct {
	Kind      ActivityKind `json:"type"`
	Detail    string       `json:"detail"`
	Timestamp time.Time    `json:"timestamp"`

	ArticleID       int64            `json:"articleId,omitempty"`
	ProposalID      int64            `json:"proposalId,omitempty"`
	Choice          VoteChoice       `json:"choice,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	ReputationDelta int64            `json:"reputationDelta,omitempty"`
}

func JoinedActivity(at time.Time) Activity {
	return Activity{Kind: ActivityJoined, Detail: "Account created", Timestamp: at}
}

func PublishedActivity(articleID int64, at time.Time) Activity {
	return Activity{
		Kind:      ActivityPublished,
		Detail:    fmt.Sprintf("Article #%d", articleID),
		Timestamp: at,
		ArticleID: articleID,
	}
}

func DonatedActivity(amount decimal.Decimal, delta int64, at time.Time) Activity {
	return Activity{
		Kind:            ActivityDonated,
		Detail:          fmt.Sprintf("%+d rep", delta),
		Timestamp:       at,
		Amount:          &amount,
		ReputationDelta: delta,
	}
}

func VotedActivity(proposalID int64, choice VoteChoice, at time.Time) Activity {
	return Activity{
		Kind:       ActivityVoted,
		Detail:     fmt.Sprintf("Proposal #%d", proposalID),
		Timestamp:  at,
		ProposalID: proposalID,
		Choice:     choice,
	}
}
