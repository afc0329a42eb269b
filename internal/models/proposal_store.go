package models

import (
	"sort"
	"strconv"
	"sync"
	"time"
)

type proposalEntry struct {
	proposal Proposal
	ballots  map[string]VoteChoice
}

func (e *proposalEntry) view(viewer string) *Proposal {
	p := e.proposal
	p.UserVote = nil
	if viewer != "" {
		if choice, ok := e.ballots[viewer]; ok {
			c := choice
			p.UserVote = &c
		}
	}
	return &p
}

// ProposalStore records one ballot per (proposal, voter). Vote counters are
// maintained incrementally alongside the ballots.
type ProposalStore struct {
	mu        sync.RWMutex
	proposals map[int64]*proposalEntry
	nextID    int64
}

func NewProposalStore() *ProposalStore {
	return &ProposalStore{
		proposals: make(map[int64]*proposalEntry),
		nextID:    1,
	}
}

// Create stores an active proposal with zeroed counters.
func (s *ProposalStore) Create(p Proposal) *Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	p.Status = ProposalActive
	p.VotesFor = 0
	p.VotesAgainst = 0
	p.UserVote = nil
	s.nextID++

	e := &proposalEntry{proposal: p, ballots: make(map[string]VoteChoice)}
	s.proposals[p.ID] = e
	return e.view("")
}

// Get returns the proposal as seen by viewer; an empty viewer sees no UserVote.
func (s *ProposalStore) Get(id int64, viewer string) (*Proposal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.proposals[id]
	if !ok {
		return nil, false
	}
	return e.view(viewer), true
}

func (s *ProposalStore) List(viewer string) []*Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Proposal, 0, len(s.proposals))
	for _, e := range s.proposals {
		result = append(result, e.view(viewer))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

func (s *ProposalStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.proposals)
}

// CastVote records the voter's ballot and bumps the matching counter. A voter
// gets exactly one ballot per proposal; it cannot be changed.
func (s *ProposalStore) CastVote(id int64, voter string, choice VoteChoice, now time.Time) (*Proposal, error) {
	if !choice.Valid() {
		return nil, Invalid("vote", "must be one of: for, against")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.proposals[id]
	if !ok {
		return nil, notFound("proposal", strconv.FormatInt(id, 10))
	}
	if e.proposal.Status != ProposalActive {
		return nil, Invalid("proposalId", "proposal is "+string(e.proposal.Status))
	}
	if !e.proposal.EndDate.IsZero() && !e.proposal.EndDate.After(now) {
		return nil, Invalid("proposalId", "voting period has ended")
	}
	if _, voted := e.ballots[voter]; voted {
		return nil, &ConflictError{Msg: voter + " already voted on proposal " + strconv.FormatInt(id, 10)}
	}

	e.ballots[voter] = choice
	switch choice {
	case VoteFor:
		e.proposal.VotesFor++
	case VoteAgainst:
		e.proposal.VotesAgainst++
	}
	return e.view(voter), nil
}

// RetractVote removes the voter's ballot and its count. It undoes a CastVote
// whose surrounding commit failed and reports whether a ballot was removed.
func (s *ProposalStore) RetractVote(id int64, voter string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.proposals[id]
	if !ok {
		return false
	}
	choice, voted := e.ballots[voter]
	if !voted {
		return false
	}
	delete(e.ballots, voter)
	switch choice {
	case VoteFor:
		e.proposal.VotesFor--
	case VoteAgainst:
		e.proposal.VotesAgainst--
	}
	return true
}

// CloseEnded settles active proposals whose end date is not after now:
// passed on a strict majority for, failed otherwise. It returns how many
// proposals changed status.
func (s *ProposalStore) CloseEnded(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	closed := 0
	for _, e := range s.proposals {
		p := &e.proposal
		if p.Status != ProposalActive || p.EndDate.IsZero() || p.EndDate.After(now) {
			continue
		}
		if p.VotesFor > p.VotesAgainst {
			p.Status = ProposalPassed
		} else {
			p.Status = ProposalFailed
		}
		closed++
	}
	return closed
}

func (s *ProposalStore) Snapshot() ([]*ProposalRecord, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*ProposalRecord, 0, len(s.proposals))
	for _, e := range s.proposals {
		ballots := make(map[string]VoteChoice, len(e.ballots))
		for voter, choice := range e.ballots {
			ballots[voter] = choice
		}
		rec := &ProposalRecord{Proposal: e.proposal, Ballots: ballots}
		rec.UserVote = nil
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, s.nextID
}

// Restore replaces the store contents. Counters are recomputed from the
// ballots so a snapshot cannot carry inconsistent totals.
func (s *ProposalStore) Restore(records []*ProposalRecord, nextID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.proposals = make(map[int64]*proposalEntry, len(records))
	maxID := int64(0)
	for _, rec := range records {
		if rec == nil || rec.ID <= 0 {
			continue
		}
		e := &proposalEntry{proposal: rec.Proposal, ballots: make(map[string]VoteChoice, len(rec.Ballots))}
		e.proposal.UserVote = nil
		if len(rec.Ballots) > 0 {
			e.proposal.VotesFor, e.proposal.VotesAgainst = 0, 0
			for voter, choice := range rec.Ballots {
				e.ballots[voter] = choice
				if choice == VoteFor {
					e.proposal.VotesFor++
				} else if choice == VoteAgainst {
					e.proposal.VotesAgainst++
				}
			}
		}
		s.proposals[rec.ID] = e
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}
	s.nextID = max(nextID, maxID+1)
}
