package models

import "time"

type ProposalStatus string

const (
	ProposalActive   ProposalStatus = "active"
	ProposalPassed   ProposalStatus = "passed"
	ProposalFailed   ProposalStatus = "failed"
	ProposalExecuted ProposalStatus = "executed"
	ProposalClosed   ProposalStatus = "closed"
)

type VoteChoice string

const (
	VoteFor     VoteChoice = "for"
	VoteAgainst VoteChoice = "against"
)

func (c VoteChoice) Valid() bool {
	return c == VoteFor || c == VoteAgainst
}

type Proposal struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Type         string         `json:"type"`
	Description  string         `json:"description"`
	Status       ProposalStatus `json:"status"`
	VotesFor     int64          `json:"votesFor"`
	VotesAgainst int64          `json:"votesAgainst"`
	EndDate      time.Time      `json:"endDate"`
	Creator      string         `json:"creator"`
	CreatedAt    time.Time      `json:"createdAt"`

	// UserVote is the ballot of the viewer the proposal was read for.
	UserVote *VoteChoice `json:"userVote,omitempty"`
}

// ProposalRecord is the persisted form of a proposal with all of its ballots.
type ProposalRecord struct {
	Proposal
	Ballots map[string]VoteChoice `json:"ballots"`
}
