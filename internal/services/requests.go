package services

import (
	"clarity/internal/models"
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

var addressRules = []validation.Rule{
	validation.Required,
	validation.Match(addressPattern).Error("must be a 0x-prefixed 20-byte hex address"),
}

func positiveAmount(value interface{}) error {
	d, _ := value.(decimal.Decimal)
	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

func minStakeRule(minStake int64) validation.RuleFunc {
	floor := decimal.NewFromInt(minStake)
	return func(value interface{}) error {
		d, _ := value.(decimal.Decimal)
		if !d.IsPositive() {
			return errors.New("must be greater than zero")
		}
		if d.LessThan(floor) {
			return errors.New("must be at least " + floor.String())
		}
		return nil
	}
}

func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &models.ValidationError{Err: err}
}

type CreateAuthorRequest struct {
	Address   string `json:"address"`
	Pseudonym string `json:"pseudonym"`
}

func (r CreateAuthorRequest) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Address, addressRules...),
		validation.Field(&r.Pseudonym, validation.Length(0, 64)),
	))
}

type PublishRequest struct {
	Author        string   `json:"author"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	Language      string   `json:"language"`
	Category      string   `json:"category"`
	IsWatermarked bool     `json:"isWatermarked"`
	FromDraftID   string   `json:"fromDraftId"`
}

func (r PublishRequest) validate(maxTags int) error {
	tagRules := []validation.Rule{validation.Each(validation.Required, validation.Length(1, 32))}
	if maxTags > 0 {
		tagRules = append(tagRules, validation.Length(0, maxTags))
	}
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Author, addressRules...),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Tags, tagRules...),
		validation.Field(&r.Language, validation.Length(0, 16)),
		validation.Field(&r.Category, validation.Length(0, 64)),
	))
}

type VerifyRequest struct {
	ArticleID int64  `json:"articleId"`
	Verifier  string `json:"verifier"`
}

func (r VerifyRequest) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Verifier, addressRules...),
	))
}

type FlagRequest struct {
	ArticleID int64           `json:"articleId"`
	Staker    string          `json:"staker"`
	Reason    string          `json:"reason"`
	Stake     decimal.Decimal `json:"stake"`
}

func (r FlagRequest) validate(minStake int64) error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Staker, addressRules...),
		validation.Field(&r.Reason, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Stake, validation.By(minStakeRule(minStake))),
	))
}

type DonateRequest struct {
	Donor           string          `json:"donor"`
	Author          string          `json:"author"`
	Amount          decimal.Decimal `json:"amount"`
	SupportProtocol bool            `json:"supportProtocol"`
	IsAnonymous     bool            `json:"isAnonymous"`
}

func (r DonateRequest) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Donor, addressRules...),
		validation.Field(&r.Author, addressRules...),
		validation.Field(&r.Amount, validation.By(positiveAmount)),
	))
}

type ProtocolDonationRequest struct {
	Donor  string          `json:"donor"`
	Amount decimal.Decimal `json:"amount"`
}

func (r ProtocolDonationRequest) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Donor, addressRules...),
		validation.Field(&r.Amount, validation.By(positiveAmount)),
	))
}

type VoteRequest struct {
	ProposalID int64             `json:"proposalId"`
	Voter      string            `json:"voter"`
	Choice     models.VoteChoice `json:"choice"`
}

func (r VoteRequest) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.ProposalID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Voter, addressRules...),
		validation.Field(&r.Choice, validation.Required, validation.In(models.VoteFor, models.VoteAgainst)),
	))
}

type CreateProposalRequest struct {
	Creator     string    `json:"creator"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	EndDate     time.Time `json:"endDate"`
}

func (r CreateProposalRequest) validate(now time.Time) error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Creator, addressRules...),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Type, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.EndDate, validation.Required, validation.Min(now).Error("must be in the future")),
	))
}

type SubscribeRequest struct {
	Subscriber string `json:"subscriber"`
	Author     string `json:"author"`
}

func (r SubscribeRequest) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Subscriber, addressRules...),
		validation.Field(&r.Author, addressRules...),
	))
}

type DelegateRequest struct {
	Delegator string `json:"delegator"`
	Delegatee string `json:"delegatee"`
}

func (r DelegateRequest) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Delegator, addressRules...),
		validation.Field(&r.Delegatee, validation.When(r.Delegatee != "", addressRules...)),
	))
}

type SaveDraftRequest struct {
	ID       string   `json:"id"`
	Author   string   `json:"author"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Language string   `json:"language"`
	Category string   `json:"category"`
}

func (r SaveDraftRequest) Validate() error {
	return asValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Author, addressRules...),
		validation.Field(&r.Title, validation.Length(0, 200)),
		validation.Field(&r.Tags, validation.Each(validation.Length(1, 32))),
	))
}
