package models

import (
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// ArticleStore holds published articles with a roaring-bitmap index from tag
// to article ids.
type ArticleStore struct {
	mu       sync.RWMutex
	articles map[int64]*Article
	tags     map[string]*roaring.Bitmap
	nextID   int64
}

func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		articles: make(map[int64]*Article),
		tags:     make(map[string]*roaring.Bitmap),
		nextID:   1,
	}
}

// Create assigns the next id and stores the article with a fresh
// verification and flag state.
func (s *ArticleStore) Create(a *Article) *Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := a.clone()
	stored.ID = s.nextID
	stored.Verifications = 0
	stored.IsFlagged = false
	stored.Flags = []Flag{}
	s.nextID++

	s.articles[stored.ID] = stored
	s.indexLocked(stored)
	return stored.clone()
}

// Delete removes an article. Only used to roll back a publish that could not
// be committed on the author side.
func (s *ArticleStore) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return
	}
	for _, tag := range a.Tags {
		if bm, ok := s.tags[tag]; ok {
			bm.Remove(uint32(id))
			if bm.IsEmpty() {
				delete(s.tags, tag)
			}
		}
	}
	delete(s.articles, id)
}

func (s *ArticleStore) indexLocked(a *Article) {
	if a.ID <= 0 || a.ID > math.MaxUint32 {
		return
	}
	for _, tag := range a.Tags {
		bm, ok := s.tags[tag]
		if !ok {
			bm = roaring.New()
			s.tags[tag] = bm
		}
		bm.Add(uint32(a.ID))
	}
}

func (s *ArticleStore) Get(id int64) (*Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, false
	}
	return a.clone(), true
}

func (s *ArticleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// List returns copies of all articles, newest id first. A non-empty tag
// restricts the result to articles carrying it.
func (s *ArticleStore) List(tag string) []*Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked(tag)
}

func (s *ArticleStore) listLocked(tag string) []*Article {
	var result []*Article
	if tag != "" {
		bm, ok := s.tags[tag]
		if !ok {
			return []*Article{}
		}
		result = make([]*Article, 0, bm.GetCardinality())
		it := bm.Iterator()
		for it.HasNext() {
			if a, ok := s.articles[int64(it.Next())]; ok {
				result = append(result, a.clone())
			}
		}
	} else {
		result = make([]*Article, 0, len(s.articles))
		for _, a := range s.articles {
			result = append(result, a.clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})
	return result
}

// Tags lists every tag in use, sorted.
func (s *ArticleStore) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

// Verify adds one verification. Flagged articles cannot be verified.
func (s *ArticleStore) Verify(id int64) (*Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, notFound("article", strconv.FormatInt(id, 10))
	}
	if a.IsFlagged {
		return nil, Invalid("articleId", "flagged articles cannot be verified")
	}
	a.Verifications++
	return a.clone(), nil
}

// Flag appends a flag and marks the article flagged. Flagging is one-way.
func (s *ArticleStore) Flag(id int64, f Flag) (*Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, notFound("article", strconv.FormatInt(id, 10))
	}
	a.Flags = append(a.Flags, f)
	a.IsFlagged = true
	return a.clone(), nil
}

// Snapshot returns all articles plus the next id to assign.
func (s *ArticleStore) Snapshot() ([]*Article, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked(""), s.nextID
}

func (s *ArticleStore) Restore(articles []*Article, nextID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.articles = make(map[int64]*Article, len(articles))
	s.tags = make(map[string]*roaring.Bitmap)
	maxID := int64(0)
	for _, a := range articles {
		if a == nil || a.ID <= 0 {
			continue
		}
		stored := a.clone()
		s.articles[stored.ID] = stored
		s.indexLocked(stored)
		if stored.ID > maxID {
			maxID = stored.ID
		}
	}
	s.nextID = max(nextID, maxID+1)
}
