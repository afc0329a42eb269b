package services_test

import (
	"clarity/internal/models"
	"clarity/internal/services"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   interface{ Validate() error }
		valid bool
	}{
		{"author ok", services.CreateAuthorRequest{Address: alice}, true},
		{"author short address", services.CreateAuthorRequest{Address: "0x1234"}, false},
		{"author no prefix", services.CreateAuthorRequest{Address: "1111111111111111111111111111111111111111"}, false},
		{"verify missing id", services.VerifyRequest{Verifier: bob}, false},
		{"verify ok", services.VerifyRequest{ArticleID: 1, Verifier: bob}, true},
		{"donate ok", services.DonateRequest{Donor: bob, Author: alice, Amount: decimal.RequireFromString("0.01")}, true},
		{"donate zero", services.DonateRequest{Donor: bob, Author: alice}, false},
		{"vote bad choice", services.VoteRequest{ProposalID: 1, Voter: bob, Choice: "abstain"}, false},
		{"vote ok", services.VoteRequest{ProposalID: 1, Voter: bob, Choice: models.VoteAgainst}, true},
		{"subscribe ok", services.SubscribeRequest{Subscriber: bob, Author: alice}, true},
		{"subscribe missing author", services.SubscribeRequest{Subscriber: bob}, false},
		{"delegate clear", services.DelegateRequest{Delegator: alice}, true},
		{"delegate bad target", services.DelegateRequest{Delegator: alice, Delegatee: "bob"}, false},
		{"draft ok", services.SaveDraftRequest{Author: alice}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, models.IsValidation(err), "got %v", err)
		})
	}
}
