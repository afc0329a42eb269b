package gateway

import (
	"context"
	"errors"
	"sync"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

var ErrContentNotFound = errors.New("content not found")

// multihash prefix for blake2b-256: varint(0xb220) followed by the digest length
var blake2b256Prefix = []byte{0xa0, 0xe4, 0x02, 0x20}

type ContentStoreInterface interface {
	Put(ctx context.Context, blob []byte) (string, error)
	Get(ctx context.Context, cid string) ([]byte, error)
}

// ContentID derives the identifier of blob: a blake2b-256 multihash in
// multibase base58btc, so identical blobs always share one id.
func ContentID(blob []byte) string {
	sum := blake2b.Sum256(blob)
	mh := make([]byte, 0, len(blake2b256Prefix)+len(sum))
	mh = append(mh, blake2b256Prefix...)
	mh = append(mh, sum[:]...)
	return "z" + base58.Encode(mh)
}

// MemoryContentStore simulates a pinning gateway in process memory.
type MemoryContentStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewContentStore() ContentStoreInterface {
	return &MemoryContentStore{blobs: make(map[string][]byte)}
}

func (s *MemoryContentStore) Put(ctx context.Context, blob []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cid := ContentID(blob)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[cid]; !ok {
		s.blobs[cid] = append([]byte(nil), blob...)
	}
	return cid, nil
}

func (s *MemoryContentStore) Get(ctx context.Context, cid string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[cid]
	if !ok {
		return nil, ErrContentNotFound
	}
	return append([]byte(nil), blob...), nil
}
