package models

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Draft struct {
	ID            string    `json:"id"`
	AuthorAddress string    `json:"authorAddress"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Tags          []string  `json:"tags"`
	Language      string    `json:"language,omitempty"`
	Category      string    `json:"category,omitempty"`
	LastSaved     time.Time `json:"lastSaved"`
}

func (d *Draft) clone() *Draft {
	c := *d
	c.Tags = append([]string(nil), d.Tags...)
	return &c
}

// DraftStore keeps unpublished drafts per author.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]map[string]*Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]map[string]*Draft)}
}

// Save inserts or replaces a draft. A draft without id gets a new uuid.
func (s *DraftStore) Save(d *Draft, now time.Time) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := d.clone()
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	stored.LastSaved = now

	byID, ok := s.drafts[stored.AuthorAddress]
	if !ok {
		byID = make(map[string]*Draft)
		s.drafts[stored.AuthorAddress] = byID
	}
	byID[stored.ID] = stored
	return stored.clone()
}

func (s *DraftStore) Get(id, author string) (*Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[author][id]
	if !ok {
		return nil, false
	}
	return d.clone(), true
}

// List returns the author's drafts, most recently saved first.
func (s *DraftStore) List(author string) []*Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := s.drafts[author]
	result := make([]*Draft, 0, len(byID))
	for _, d := range byID {
		result = append(result, d.clone())
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].LastSaved.Equal(result[j].LastSaved) {
			return result[i].ID < result[j].ID
		}
		return result[i].LastSaved.After(result[j].LastSaved)
	})
	return result
}

// Delete is idempotent.
func (s *DraftStore) Delete(id, author string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID, ok := s.drafts[author]
	if !ok {
		return
	}
	delete(byID, id)
	if len(byID) == 0 {
		delete(s.drafts, author)
	}
}

func (s *DraftStore) Snapshot() []*Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Draft
	for _, byID := range s.drafts {
		for _, d := range byID {
			result = append(result, d.clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

func (s *DraftStore) Restore(drafts []*Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts = make(map[string]map[string]*Draft)
	for _, d := range drafts {
		if d == nil || d.ID == "" {
			continue
		}
		byID, ok := s.drafts[d.AuthorAddress]
		if !ok {
			byID = make(map[string]*Draft)
			s.drafts[d.AuthorAddress] = byID
		}
		byID[d.ID] = d.clone()
	}
}
