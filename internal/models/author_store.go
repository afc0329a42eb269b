package models

import (
	"sort"
	"sync"
	"time"

	"clarity/internal/scoring"

	"github.com/shopspring/decimal"
)

// Mutation changes a working copy of an author. Returning an error discards
// every mutation of the same Apply call.
type Mutation func(a *Author) error

func AppendActivity(act Activity) Mutation {
	return func(a *Author) error {
		a.Activity = append(a.Activity, act)
		return nil
	}
}

func AdjustBy(delta int64) Mutation {
	return func(a *Author) error {
		a.ReputationScore += delta
		return nil
	}
}

func AddDonation(authorAmount decimal.Decimal) Mutation {
	return func(a *Author) error {
		a.TotalDonations = a.TotalDonations.Add(authorAmount)
		return nil
	}
}

func IncVotes() Mutation {
	return func(a *Author) error {
		a.VotesCasted++
		return nil
	}
}

func MarkZkVerified() Mutation {
	return func(a *Author) error {
		a.IsZkVerified = true
		return nil
	}
}

// AuthorStore is the reputation ledger: the only place where reputation,
// donation totals, vote counts, activity logs and delegation pointers change.
type AuthorStore struct {
	mu                sync.RWMutex
	authors           map[string]*Author
	initialReputation int64
}

func NewAuthorStore(initialReputation int64) *AuthorStore {
	return &AuthorStore{
		authors:           make(map[string]*Author),
		initialReputation: initialReputation,
	}
}

// Create registers a new author with the starting reputation and a joined entry.
func (s *AuthorStore) Create(address, pseudonym string, now time.Time) (*Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[address]; ok {
		return nil, &ConflictError{Msg: "author " + address + " already exists"}
	}
	a := &Author{
		Address:         address,
		Pseudonym:       pseudonym,
		ReputationScore: s.initialReputation,
		TotalDonations:  decimal.Zero,
		Activity:        []Activity{JoinedActivity(now)},
		JoinedAt:        now,
	}
	s.authors[address] = a
	return a.clone(), nil
}

func (s *AuthorStore) Get(address string) (*Author, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.authors[address]
	if !ok {
		return nil, false
	}
	return a.clone(), true
}

func (s *AuthorStore) Exists(address string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.authors[address]
	return ok
}

func (s *AuthorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.authors)
}

// List returns copies of all authors ordered by address.
func (s *AuthorStore) List() []*Author {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Author, 0, len(s.authors))
	for _, a := range s.authors {
		result = append(result, a.clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Address < result[j].Address
	})
	return result
}

// Apply runs the mutations against a copy of the author and commits the copy
// only when all of them succeed.
func (s *AuthorStore) Apply(address string, mutations ...Mutation) (*Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(address, mutations...)
}

func (s *AuthorStore) applyLocked(address string, mutations ...Mutation) (*Author, error) {
	current, ok := s.authors[address]
	if !ok {
		return nil, notFound("author", address)
	}
	working := current.clone()
	for _, m := range mutations {
		if err := m(working); err != nil {
			return nil, err
		}
	}
	s.authors[address] = working
	return working.clone(), nil
}

func (s *AuthorStore) RecordActivity(address string, act Activity) (*Author, error) {
	return s.Apply(address, AppendActivity(act))
}

func (s *AuthorStore) AdjustReputation(address string, delta int64) (*Author, error) {
	return s.Apply(address, AdjustBy(delta))
}

// RecordDonation credits the net amount, grants round(net/10) reputation and
// logs the donation. It returns the reputation delta.
func (s *AuthorStore) RecordDonation(address string, authorAmount decimal.Decimal, at time.Time) (int64, *Author, error) {
	delta := scoring.DonationReputation(authorAmount)
	a, err := s.Apply(address,
		AddDonation(authorAmount),
		AdjustBy(delta),
		AppendActivity(DonatedActivity(authorAmount, delta, at)),
	)
	if err != nil {
		return 0, nil, err
	}
	return delta, a, nil
}

func (s *AuthorStore) IncrementVoteCount(address string) (*Author, error) {
	return s.Apply(address, IncVotes())
}

// Delegate points delegator at delegatee. An empty delegatee clears the pointer.
func (s *AuthorStore) Delegate(delegator, delegatee string) (*Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[delegator]; !ok {
		return nil, notFound("author", delegator)
	}
	if delegatee == "" {
		return s.applyLocked(delegator, func(a *Author) error {
			a.DelegatedTo = nil
			return nil
		})
	}
	if delegatee == delegator {
		return nil, Invalid("delegatee", "an author cannot delegate to itself")
	}
	if _, ok := s.authors[delegatee]; !ok {
		return nil, notFound("delegatee", delegatee)
	}
	return s.applyLocked(delegator, func(a *Author) error {
		to := delegatee
		a.DelegatedTo = &to
		return nil
	})
}

// DelegationChain follows delegation pointers starting at address. The walk
// stops at an author without delegation or at the first repeated address, in
// which case cyclic is true. Votes are never forwarded along this chain.
func (s *AuthorStore) DelegationChain(address string) (chain []string, cyclic bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.authors[address]; !ok {
		return nil, false, notFound("author", address)
	}
	seen := map[string]struct{}{address: {}}
	chain = []string{address}
	current := address
	for {
		a, ok := s.authors[current]
		if !ok || a.DelegatedTo == nil {
			return chain, false, nil
		}
		next := *a.DelegatedTo
		chain = append(chain, next)
		if _, dup := seen[next]; dup {
			return chain, true, nil
		}
		seen[next] = struct{}{}
		current = next
	}
}

func (s *AuthorStore) Snapshot() []*Author {
	return s.List()
}

func (s *AuthorStore) Restore(authors []*Author) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authors = make(map[string]*Author, len(authors))
	for _, a := range authors {
		if a == nil || a.Address == "" {
			continue
		}
		s.authors[a.Address] = a.clone()
	}
}
