package services

import (
	"clarity/internal/gateway"
	"clarity/internal/models"
	"clarity/internal/scoring"
	"clarity/internal/structures"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

type LedgerServiceInterface interface {
	CreateAuthor(ctx context.Context, req CreateAuthorRequest) (*models.Author, error)
	AuthorExists(address string) bool
	GetAuthor(address string) (*models.Author, error)
	ListAuthors() []*models.Author
	VerifyZk(ctx context.Context, address string) (*models.Author, error)
	Delegate(ctx context.Context, req DelegateRequest) (*models.Author, error)
	DelegationChain(address string) (*DelegationView, error)

	Publish(ctx context.Context, req PublishRequest) (*ArticleView, error)
	Verify(ctx context.Context, req VerifyRequest) (*ArticleView, error)
	Flag(ctx context.Context, req FlagRequest) (*ArticleView, error)
	ListArticles(order, tag string) ([]*ArticleView, error)
	GetArticle(id int64) (*ArticleView, error)
	Tags() []string
	GetContent(ctx context.Context, cid string) ([]byte, error)

	Donate(ctx context.Context, req DonateRequest) (*DonationReceipt, error)
	DonateToProtocol(ctx context.Context, req ProtocolDonationRequest) (*ProtocolDonationReceipt, error)

	CreateProposal(ctx context.Context, req CreateProposalRequest) (*models.Proposal, error)
	ListProposals(viewer string) []*models.Proposal
	GetProposal(id int64, viewer string) (*models.Proposal, error)
	CastVote(ctx context.Context, req VoteRequest) (*models.Proposal, error)

	Subscribe(ctx context.Context, req SubscribeRequest) (*SubscriptionReceipt, error)
	Unsubscribe(ctx context.Context, req SubscribeRequest) (bool, error)
	ListSubscriptions(subscriber string) []models.Subscription
	Sweep(now time.Time) SweepResult
	RunKeeper() SweepResult

	SaveDraft(req SaveDraftRequest) (*models.Draft, error)
	ListDrafts(author string) []*models.Draft
	DeleteDraft(id, author string)

	PublicConfig() PublicConfig
	Stats() LedgerStats
	Snapshot() *models.LedgerSnapshot
	Restore(snapshot *models.LedgerSnapshot) error
}

// ArticleView is an article together with its impact score at read time.
type ArticleView struct {
	*models.Article
	ImpactScore     int64  `json:"impactScore"`
	AuthorPseudonym string `json:"authorPseudonym,omitempty"`
}

type DelegationView struct {
	Address     string   `json:"address"`
	DelegatedTo *string  `json:"delegatedTo"`
	Chain       []string `json:"chain"`
	Cyclic      bool     `json:"cyclic"`
}

type DonationReceipt struct {
	Donor          string          `json:"donor,omitempty"`
	Anonymous      bool            `json:"anonymous"`
	Amount         decimal.Decimal `json:"amount"`
	Fee            decimal.Decimal `json:"fee"`
	AuthorAmount   decimal.Decimal `json:"authorAmount"`
	ReputationGain int64           `json:"reputationGain"`
	Author         *models.Author  `json:"author"`
	TxHash         string          `json:"txHash"`
}

// ProtocolDonationReceipt reports a direct donation to the protocol treasury
// and the treasury balance after it.
type ProtocolDonationReceipt struct {
	Donor    string          `json:"donor"`
	Amount   decimal.Decimal `json:"amount"`
	Treasury decimal.Decimal `json:"treasury"`
	TxHash   string          `json:"txHash"`
}

type SubscriptionReceipt struct {
	models.Subscription
	TxHash string `json:"txHash"`
}

type SweepResult struct {
	At                   time.Time `json:"at"`
	ExpiredSubscriptions int       `json:"expiredSubscriptions"`
	ClosedProposals      int       `json:"closedProposals"`
}

type PublicConfig struct {
	FeeBps            int64  `json:"feeBps"`
	MinFlagStake      int64  `json:"minFlagStake"`
	SubscriptionTTL   string `json:"subscriptionTtl"`
	InitialReputation int64  `json:"initialReputation"`
	PublishReward     int64  `json:"publishReward"`
	MaxTags           int    `json:"maxTags"`
}

type LedgerStats struct {
	Authors             int `json:"authors"`
	Articles            int `json:"articles"`
	ActiveSubscriptions int `json:"activeSubscriptions"`
	StoredSubscriptions int `json:"storedSubscriptions"`
	Proposals           int `json:"proposals"`

	// Treasury is the protocol treasury balance in decimal notation.
	Treasury string `json:"treasury"`
}

type articleMetadata struct {
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Tags          []string  `json:"tags"`
	Language      string    `json:"language,omitempty"`
	Category      string    `json:"category,omitempty"`
	ContentCID    string    `json:"contentCid"`
	IsWatermarked bool      `json:"isWatermarked"`
	Timestamp     time.Time `json:"timestamp"`
}

type LedgerService struct {
	// commitMu is held shared by operations that commit to more than one
	// store and exclusively by Snapshot and Restore, so a snapshot never
	// sees half of such a commit.
	commitMu sync.RWMutex

	treasuryMu sync.Mutex
	treasury   decimal.Decimal

	conf          structures.LedgerConfig
	authors       *models.AuthorStore
	articles      *models.ArticleStore
	subscriptions *models.SubscriptionStore
	proposals     *models.ProposalStore
	drafts        *models.DraftStore
	content       gateway.ContentStoreInterface
	registry      gateway.RegistryInterface
	clock         Clock
}

func NewLedgerService(conf *structures.Config, content gateway.ContentStoreInterface, registry gateway.RegistryInterface, clock Clock) LedgerServiceInterface {
	return &LedgerService{
		conf:          conf.Ledger,
		authors:       models.NewAuthorStore(conf.Ledger.InitialReputation),
		articles:      models.NewArticleStore(),
		subscriptions: models.NewSubscriptionStore(conf.Ledger.SubscriptionTTL),
		proposals:     models.NewProposalStore(),
		drafts:        models.NewDraftStore(),
		content:       content,
		registry:      registry,
		clock:         clock,
	}
}

func external(dependency string, err error) error {
	var ext *models.ExternalDependencyError
	if errors.As(err, &ext) {
		return err
	}
	return &models.ExternalDependencyError{Dependency: dependency, Err: err}
}

func (s *LedgerService) submit(ctx context.Context, kind gateway.TxKind, from string) (gateway.TxHandle, error) {
	tx, err := s.registry.Submit(ctx, kind, from)
	if err != nil {
		return gateway.TxHandle{}, external("registry", fmt.Errorf("%s tx: %w", kind, err))
	}
	return tx, nil
}

func (s *LedgerService) requireAuthor(entity, address string) (*models.Author, error) {
	a, ok := s.authors.Get(address)
	if !ok {
		return nil, &models.NotFoundError{Entity: entity, ID: address}
	}
	return a, nil
}

func (s *LedgerService) CreateAuthor(_ context.Context, req CreateAuthorRequest) (*models.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.authors.Create(req.Address, strings.TrimSpace(req.Pseudonym), s.clock.Now())
}

func (s *LedgerService) AuthorExists(address string) bool {
	return s.authors.Exists(address)
}

func (s *LedgerService) GetAuthor(address string) (*models.Author, error) {
	return s.requireAuthor("author", address)
}

func (s *LedgerService) ListAuthors() []*models.Author {
	return s.authors.List()
}

func (s *LedgerService) VerifyZk(ctx context.Context, address string) (*models.Author, error) {
	if _, err := s.requireAuthor("author", address); err != nil {
		return nil, err
	}
	if _, err := s.submit(ctx, gateway.TxZkKyc, address); err != nil {
		return nil, err
	}
	return s.authors.Apply(address, models.MarkZkVerified())
}

func (s *LedgerService) Delegate(ctx context.Context, req DelegateRequest) (*models.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.requireAuthor("author", req.Delegator); err != nil {
		return nil, err
	}
	if req.Delegatee != "" {
		if req.Delegatee == req.Delegator {
			return nil, models.Invalid("delegatee", "an author cannot delegate to itself")
		}
		if _, err := s.requireAuthor("delegatee", req.Delegatee); err != nil {
			return nil, err
		}
	}
	if _, err := s.submit(ctx, gateway.TxDelegate, req.Delegator); err != nil {
		return nil, err
	}
	return s.authors.Delegate(req.Delegator, req.Delegatee)
}

func (s *LedgerService) DelegationChain(address string) (*DelegationView, error) {
	a, err := s.requireAuthor("author", address)
	if err != nil {
		return nil, err
	}
	chain, cyclic, err := s.authors.DelegationChain(address)
	if err != nil {
		return nil, err
	}
	return &DelegationView{Address: address, DelegatedTo: a.DelegatedTo, Chain: chain, Cyclic: cyclic}, nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}

// Publish pins the body and its metadata, records the publish transaction and
// then commits the article together with the author's reward.
func (s *LedgerService) Publish(ctx context.Context, req PublishRequest) (*ArticleView, error) {
	req.Tags = normalizeTags(req.Tags)
	req.Title = strings.TrimSpace(req.Title)
	if err := req.validate(s.conf.MaxTags); err != nil {
		return nil, err
	}
	author, err := s.requireAuthor("author", req.Author)
	if err != nil {
		return nil, err
	}
	if req.FromDraftID != "" {
		if _, ok := s.drafts.Get(req.FromDraftID, req.Author); !ok {
			return nil, &models.NotFoundError{Entity: "draft", ID: req.FromDraftID}
		}
	}

	now := s.clock.Now()
	contentCID, err := s.content.Put(ctx, []byte(req.Content))
	if err != nil {
		return nil, external("content store", err)
	}
	meta, err := json.Marshal(articleMetadata{
		Title:         req.Title,
		Author:        req.Author,
		Tags:          req.Tags,
		Language:      req.Language,
		Category:      req.Category,
		ContentCID:    contentCID,
		IsWatermarked: req.IsWatermarked,
		Timestamp:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal article metadata: %w", err)
	}
	metadataCID, err := s.content.Put(ctx, meta)
	if err != nil {
		return nil, external("content store", err)
	}
	tx, err := s.submit(ctx, gateway.TxPublish, req.Author)
	if err != nil {
		return nil, err
	}

	s.commitMu.RLock()
	defer s.commitMu.RUnlock()

	article := s.articles.Create(&models.Article{
		AuthorAddress: req.Author,
		Title:         req.Title,
		Tags:          req.Tags,
		Language:      req.Language,
		Category:      req.Category,
		PublishedAt:   now,
		IsWatermarked: req.IsWatermarked,
		ContentCID:    contentCID,
		MetadataCID:   metadataCID,
		TxHash:        tx.Hash,
	})
	author, err = s.authors.Apply(req.Author,
		models.AppendActivity(models.PublishedActivity(article.ID, now)),
		models.AdjustBy(s.conf.PublishReward),
	)
	if err != nil {
		s.articles.Delete(article.ID)
		return nil, err
	}
	if req.FromDraftID != "" {
		s.drafts.Delete(req.FromDraftID, req.Author)
	}
	return s.view(article, author), nil
}

func (s *LedgerService) Verify(ctx context.Context, req VerifyRequest) (*ArticleView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	current, ok := s.articles.Get(req.ArticleID)
	if !ok {
		return nil, &models.NotFoundError{Entity: "article", ID: strconv.FormatInt(req.ArticleID, 10)}
	}
	if current.IsFlagged {
		return nil, models.Invalid("articleId", "flagged articles cannot be verified")
	}
	if _, err := s.submit(ctx, gateway.TxVerify, req.Verifier); err != nil {
		return nil, err
	}
	article, err := s.articles.Verify(req.ArticleID)
	if err != nil {
		return nil, err
	}
	return s.viewWithAuthor(article), nil
}

func (s *LedgerService) Flag(ctx context.Context, req FlagRequest) (*ArticleView, error) {
	req.Reason = strings.TrimSpace(req.Reason)
	if err := req.validate(s.conf.MinFlagStake); err != nil {
		return nil, err
	}
	if _, ok := s.articles.Get(req.ArticleID); !ok {
		return nil, &models.NotFoundError{Entity: "article", ID: strconv.FormatInt(req.ArticleID, 10)}
	}
	if _, err := s.submit(ctx, gateway.TxFlag, req.Staker); err != nil {
		return nil, err
	}
	article, err := s.articles.Flag(req.ArticleID, models.Flag{
		Staker:    req.Staker,
		Reason:    req.Reason,
		Stake:     req.Stake,
		FlaggedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	return s.viewWithAuthor(article), nil
}

func (s *LedgerService) view(a *models.Article, author *models.Author) *ArticleView {
	v := &ArticleView{Article: a, ImpactScore: a.ImpactScore(author)}
	if author != nil {
		v.AuthorPseudonym = author.Pseudonym
	}
	return v
}

func (s *LedgerService) viewWithAuthor(a *models.Article) *ArticleView {
	author, _ := s.authors.Get(a.AuthorAddress)
	return s.view(a, author)
}

// ListArticles returns the feed in the requested order. Impact scores are
// computed from the authors' current state on every call.
func (s *LedgerService) ListArticles(order, tag string) ([]*ArticleView, error) {
	feedOrder, ok := scoring.ParseFeedOrder(order)
	if !ok {
		return nil, models.Invalid("sort", "must be one of: latest, trust, reputation, trending")
	}

	articles := s.articles.List(strings.TrimSpace(tag))
	authors := make(map[string]*models.Author)
	views := make([]*ArticleView, 0, len(articles))
	keys := make(map[int64]scoring.FeedKey, len(articles))
	for _, a := range articles {
		author, seen := authors[a.AuthorAddress]
		if !seen {
			author, _ = s.authors.Get(a.AuthorAddress)
			authors[a.AuthorAddress] = author
		}
		v := s.view(a, author)
		views = append(views, v)

		key := scoring.FeedKey{ID: a.ID, PublishedAt: a.PublishedAt.UnixNano(), Impact: v.ImpactScore, Verifications: a.Verifications}
		if author != nil {
			key.Reputation = author.ReputationScore
		}
		keys[a.ID] = key
	}
	sort.SliceStable(views, func(i, j int) bool {
		return feedOrder.Before(keys[views[i].ID], keys[views[j].ID])
	})
	return views, nil
}

func (s *LedgerService) GetArticle(id int64) (*ArticleView, error) {
	a, ok := s.articles.Get(id)
	if !ok {
		return nil, &models.NotFoundError{Entity: "article", ID: strconv.FormatInt(id, 10)}
	}
	return s.viewWithAuthor(a), nil
}

func (s *LedgerService) Tags() []string {
	return s.articles.Tags()
}

func (s *LedgerService) GetContent(ctx context.Context, cid string) ([]byte, error) {
	if cid == "" {
		return nil, models.Invalid("cid", "cannot be blank")
	}
	blob, err := s.content.Get(ctx, cid)
	if errors.Is(err, gateway.ErrContentNotFound) {
		return nil, &models.NotFoundError{Entity: "content", ID: cid}
	}
	if err != nil {
		return nil, external("content store", err)
	}
	return blob, nil
}

// Donate splits the amount into protocol fee and author share and credits the
// author. Anonymous donations are accounted identically; only the receipt
// hides the donor.
func (s *LedgerService) Donate(ctx context.Context, req DonateRequest) (*DonationReceipt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.requireAuthor("author", req.Author); err != nil {
		return nil, err
	}

	fee, authorAmount := scoring.DonationSplit(req.Amount, s.conf.FeeBps, req.SupportProtocol)
	tx, err := s.submit(ctx, gateway.TxDonate, req.Donor)
	if err != nil {
		return nil, err
	}
	s.commitMu.RLock()
	delta, author, err := s.authors.RecordDonation(req.Author, authorAmount, s.clock.Now())
	if err == nil {
		s.addToTreasury(fee)
	}
	s.commitMu.RUnlock()
	if err != nil {
		return nil, err
	}

	receipt := &DonationReceipt{
		Donor:          req.Donor,
		Anonymous:      req.IsAnonymous,
		Amount:         req.Amount,
		Fee:            fee,
		AuthorAmount:   authorAmount,
		ReputationGain: delta,
		Author:         author,
		TxHash:         tx.Hash,
	}
	if req.IsAnonymous {
		receipt.Donor = ""
	}
	return receipt, nil
}

func (s *LedgerService) addToTreasury(amount decimal.Decimal) decimal.Decimal {
	s.treasuryMu.Lock()
	defer s.treasuryMu.Unlock()
	s.treasury = s.treasury.Add(amount)
	return s.treasury
}

func (s *LedgerService) treasuryBalance() decimal.Decimal {
	s.treasuryMu.Lock()
	defer s.treasuryMu.Unlock()
	return s.treasury
}

// DonateToProtocol credits the protocol treasury directly. No author is
// involved and no reputation moves.
func (s *LedgerService) DonateToProtocol(ctx context.Context, req ProtocolDonationRequest) (*ProtocolDonationReceipt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tx, err := s.submit(ctx, gateway.TxTreasury, req.Donor)
	if err != nil {
		return nil, err
	}

	s.commitMu.RLock()
	balance := s.addToTreasury(req.Amount)
	s.commitMu.RUnlock()

	return &ProtocolDonationReceipt{
		Donor:    req.Donor,
		Amount:   req.Amount,
		Treasury: balance,
		TxHash:   tx.Hash,
	}, nil
}

func (s *LedgerService) CreateProposal(ctx context.Context, req CreateProposalRequest) (*models.Proposal, error) {
	req.Title = strings.TrimSpace(req.Title)
	now := s.clock.Now()
	if err := req.validate(now); err != nil {
		return nil, err
	}
	if _, err := s.requireAuthor("author", req.Creator); err != nil {
		return nil, err
	}
	if _, err := s.submit(ctx, gateway.TxProposal, req.Creator); err != nil {
		return nil, err
	}
	return s.proposals.Create(models.Proposal{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		EndDate:     req.EndDate,
		Creator:     req.Creator,
		CreatedAt:   now,
	}), nil
}

func (s *LedgerService) ListProposals(viewer string) []*models.Proposal {
	return s.proposals.List(viewer)
}

func (s *LedgerService) GetProposal(id int64, viewer string) (*models.Proposal, error) {
	p, ok := s.proposals.Get(id, viewer)
	if !ok {
		return nil, &models.NotFoundError{Entity: "proposal", ID: strconv.FormatInt(id, 10)}
	}
	return p, nil
}

// CastVote records one ballot per voter and proposal. Voters registered as
// authors also get their vote count and activity updated. Delegation never
// changes whose ballot this is.
func (s *LedgerService) CastVote(ctx context.Context, req VoteRequest) (*models.Proposal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	current, err := s.GetProposal(req.ProposalID, req.Voter)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if current.UserVote != nil {
		return nil, &models.ConflictError{Msg: req.Voter + " already voted on proposal " + strconv.FormatInt(req.ProposalID, 10)}
	}
	if current.Status != models.ProposalActive || (!current.EndDate.IsZero() && !current.EndDate.After(now)) {
		return nil, models.Invalid("proposalId", "proposal is not open for voting")
	}
	isAuthor := s.authors.Exists(req.Voter)
	if _, err := s.submit(ctx, gateway.TxVote, req.Voter); err != nil {
		return nil, err
	}

	s.commitMu.RLock()
	defer s.commitMu.RUnlock()

	p, err := s.proposals.CastVote(req.ProposalID, req.Voter, req.Choice, now)
	if err != nil {
		return nil, err
	}
	if isAuthor {
		if _, err := s.authors.Apply(req.Voter,
			models.IncVotes(),
			models.AppendActivity(models.VotedActivity(req.ProposalID, req.Choice, now)),
		); err != nil {
			s.proposals.RetractVote(req.ProposalID, req.Voter)
			return nil, err
		}
	}
	return p, nil
}

func (s *LedgerService) Subscribe(ctx context.Context, req SubscribeRequest) (*SubscriptionReceipt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.requireAuthor("author", req.Author); err != nil {
		return nil, err
	}
	tx, err := s.submit(ctx, gateway.TxSubscribe, req.Subscriber)
	if err != nil {
		return nil, err
	}
	sub := s.subscriptions.Subscribe(req.Subscriber, req.Author, s.clock.Now())
	return &SubscriptionReceipt{Subscription: sub, TxHash: tx.Hash}, nil
}

// Unsubscribe is idempotent; it reports whether a record was removed.
func (s *LedgerService) Unsubscribe(ctx context.Context, req SubscribeRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}
	if !s.subscriptions.IsActive(req.Subscriber, req.Author, s.clock.Now()) {
		return s.subscriptions.Unsubscribe(req.Subscriber, req.Author), nil
	}
	if _, err := s.submit(ctx, gateway.TxUnsubscribe, req.Subscriber); err != nil {
		return false, err
	}
	return s.subscriptions.Unsubscribe(req.Subscriber, req.Author), nil
}

func (s *LedgerService) ListSubscriptions(subscriber string) []models.Subscription {
	return s.subscriptions.ListActive(subscriber, s.clock.Now())
}

// Sweep removes subscriptions expired at now and settles proposals whose
// voting period has ended.
func (s *LedgerService) Sweep(now time.Time) SweepResult {
	return SweepResult{
		At:                   now,
		ExpiredSubscriptions: s.subscriptions.SweepExpired(now),
		ClosedProposals:      s.proposals.CloseEnded(now),
	}
}

func (s *LedgerService) RunKeeper() SweepResult {
	return s.Sweep(s.clock.Now())
}

func (s *LedgerService) SaveDraft(req SaveDraftRequest) (*models.Draft, error) {
	req.Tags = normalizeTags(req.Tags)
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.drafts.Save(&models.Draft{
		ID:            req.ID,
		AuthorAddress: req.Author,
		Title:         req.Title,
		Content:       req.Content,
		Tags:          req.Tags,
		Language:      req.Language,
		Category:      req.Category,
	}, s.clock.Now()), nil
}

func (s *LedgerService) ListDrafts(author string) []*models.Draft {
	return s.drafts.List(author)
}

func (s *LedgerService) DeleteDraft(id, author string) {
	s.drafts.Delete(id, author)
}

func (s *LedgerService) PublicConfig() PublicConfig {
	return PublicConfig{
		FeeBps:            s.conf.FeeBps,
		MinFlagStake:      s.conf.MinFlagStake,
		SubscriptionTTL:   s.conf.SubscriptionTTL.String(),
		InitialReputation: s.conf.InitialReputation,
		PublishReward:     s.conf.PublishReward,
		MaxTags:           s.conf.MaxTags,
	}
}

func (s *LedgerService) Stats() LedgerStats {
	return LedgerStats{
		Authors:             s.authors.Len(),
		Articles:            s.articles.Len(),
		ActiveSubscriptions: s.subscriptions.CountActive(s.clock.Now()),
		StoredSubscriptions: s.subscriptions.Len(),
		Proposals:           s.proposals.Len(),
		Treasury:            s.treasuryBalance().String(),
	}
}

// Snapshot copies every store while no multi-store commit is in flight.
func (s *LedgerService) Snapshot() *models.LedgerSnapshot {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	articles, nextArticle := s.articles.Snapshot()
	proposals, nextProposal := s.proposals.Snapshot()
	return &models.LedgerSnapshot{
		Version:        models.SnapshotVersion,
		Authors:        s.authors.Snapshot(),
		Articles:       articles,
		NextArticleID:  nextArticle,
		Subscriptions:  s.subscriptions.Snapshot(),
		Proposals:      proposals,
		NextProposalID: nextProposal,
		Drafts:         s.drafts.Snapshot(),
		Treasury:       s.treasuryBalance(),
	}
}

func (s *LedgerService) Restore(snapshot *models.LedgerSnapshot) error {
	if snapshot == nil {
		return errors.New("nil snapshot")
	}
	if snapshot.Version != models.SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.authors.Restore(snapshot.Authors)
	s.articles.Restore(snapshot.Articles, snapshot.NextArticleID)
	s.subscriptions.Restore(snapshot.Subscriptions)
	s.proposals.Restore(snapshot.Proposals, snapshot.NextProposalID)
	s.drafts.Restore(snapshot.Drafts)

	s.treasuryMu.Lock()
	s.treasury = snapshot.Treasury
	s.treasuryMu.Unlock()
	return nil
}
