package models

import "github.com/shopspring/decimal"

// SnapshotVersion is the current LedgerSnapshot format.
const SnapshotVersion = 1

// LedgerSnapshot is the persisted form of the whole ledger. Every entity is
// an independent record keyed by its natural id; activity logs travel with
// their author.
type LedgerSnapshot struct {
	Version        int               `json:"version"`
	Authors        []*Author         `json:"authors"`
	Articles       []*Article        `json:"articles"`
	NextArticleID  int64             `json:"next_article_id"`
	Subscriptions  []Subscription    `json:"subscriptions"`
	Proposals      []*ProposalRecord `json:"proposals"`
	NextProposalID int64             `json:"next_proposal_id"`
	Drafts         []*Draft          `json:"drafts"`
	Treasury       decimal.Decimal   `json:"treasury"`
}
