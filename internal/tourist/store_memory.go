package tourist

import (
	"context"
	"sync"

	"suraksha/pkg/platform/sentinel"
)

// Store is the registry persistence port. The in-memory implementation is the
// only one; the interface exists so services and handlers stay decoupled from
// it in tests.
type Store interface {
	Create(ctx context.Context, t *Tourist) error
	FindByID(ctx context.Context, id string) (*Tourist, error)
	FindByEmail(ctx context.Context, email string) (*Tourist, error)
	List(ctx context.Context) ([]*Tourist, error)
	ListPending(ctx context.Context) ([]*Tourist, error)
	SetVerified(ctx context.Context, id, blockchainID string) (*Tourist, error)
	SetRejected(ctx context.Context, id string) (*Tourist, error)
}

// InMemoryStore keeps tourists in insertion order plus an id index. It favors
// clarity over performance and is instantiated per test case rather than held
// as a global.
type InMemoryStore struct {
	mu    sync.RWMutex
	order []*Tourist
	byID  map[string]*Tourist
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byID: make(map[string]*Tourist)}
}

func (s *InMemoryStore) Create(_ context.Context, t *Tourist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.order = append(s.order, &cp)
	s.byID[cp.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*Tourist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

// FindByEmail returns the first record with the given email. Email uniqueness
// is intentionally not enforced.
func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*Tourist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.order {
		if t.Email == email {
			cp := *t
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) List(_ context.Context) ([]*Tourist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Tourist, 0, len(s.order))
	for _, t := range s.order {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemoryStore) ListPending(_ context.Context) ([]*Tourist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Tourist
	for _, t := range s.order {
		if t.VerificationStatus == StatusPending {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

// SetVerified transitions a pending record to verified and stores the issued
// blockchain id. Terminal records are returned unchanged (idempotent no-op).
func (s *InMemoryStore) SetVerified(_ context.Context, id, blockchainID string) (*Tourist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if t.VerificationStatus == StatusPending {
		t.VerificationStatus = StatusVerified
		t.BlockchainID = blockchainID
	}
	cp := *t
	return &cp, nil
}

// SetRejected transitions a pending record to rejected. Terminal records are
// returned unchanged (idempotent no-op).
func (s *InMemoryStore) SetRejected(_ context.Context, id string) (*Tourist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if t.VerificationStatus == StatusPending {
		t.VerificationStatus = StatusRejected
	}
	cp := *t
	return &cp, nil
}
