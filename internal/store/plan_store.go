// Package store persists the course plan as one opaque JSON blob.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/repository"
)

// PlanKey is the fixed key the serialized plan is stored under.
const PlanKey = "coursePlan_v1"

// PlanStore loads and saves the plan. Load never fails: a missing or
// unreadable blob yields an empty plan.
type PlanStore interface {
	Load(ctx context.Context) domain.Plan
	Save(ctx context.Context, p domain.Plan) error
}

// EncodePlan serializes p in the stored blob format.
func EncodePlan(p domain.Plan) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding plan: %w", err)
	}
	return string(data), nil
}

// DecodePlan parses a stored blob and normalises its semesters.
func DecodePlan(blob string) (domain.Plan, error) {
	var p domain.Plan
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return domain.Plan{}, fmt.Errorf("decoding plan: %w", err)
	}
	p.Normalize()
	return p, nil
}

// KVPlanStore keeps the plan blob in a KVRepo.
type KVPlanStore struct {
	kv     repository.KVRepo
	key    string
	logger *slog.Logger
}

// NewKVPlanStore creates a store over kv. A nil logger discards output.
func NewKVPlanStore(kv repository.KVRepo, logger *slog.Logger) *KVPlanStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &KVPlanStore{kv: kv, key: PlanKey, logger: logger}
}

func (s *KVPlanStore) Load(ctx context.Context) domain.Plan {
	blob, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to read course plan", "key", s.key, "error", err)
		}
		return domain.NewPlan()
	}
	p, err := DecodePlan(blob)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load course plan", "key", s.key, "error", err)
		return domain.NewPlan()
	}
	return p
}

func (s *KVPlanStore) Save(ctx context.Context, p domain.Plan) error {
	blob, err := EncodePlan(p)
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, s.key, blob); err != nil {
		return fmt.Errorf("saving course plan: %w", err)
	}
	return nil
}

// MemoryPlanStore is an in-process PlanStore that still round-trips
// through the blob format.
type MemoryPlanStore struct {
	mu     sync.Mutex
	blob   string
	saves  int
	logger *slog.Logger
}

// NewMemoryPlanStore returns an empty store.
func NewMemoryPlanStore() *MemoryPlanStore {
	return &MemoryPlanStore{logger: slog.New(slog.DiscardHandler)}
}

// NewMemoryPlanStoreWithBlob returns a store pre-seeded with a raw blob.
func NewMemoryPlanStoreWithBlob(blob string) *MemoryPlanStore {
	s := NewMemoryPlanStore()
	s.blob = blob
	return s
}

func (s *MemoryPlanStore) Load(ctx context.Context) domain.Plan {
	s.mu.Lock()
	blob := s.blob
	s.mu.Unlock()

	if blob == "" {
		return domain.NewPlan()
	}
	p, err := DecodePlan(blob)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load course plan", "error", err)
		return domain.NewPlan()
	}
	return p
}

func (s *MemoryPlanStore) Save(_ context.Context, p domain.Plan) error {
	blob, err := EncodePlan(p)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = blob
	s.saves++
	return nil
}

// Blob returns the last saved blob.
func (s *MemoryPlanStore) Blob() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blob
}

// Saves returns how many times Save succeeded.
func (s *MemoryPlanStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
