package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"pocket-ledger/internal/models"
	"pocket-ledger/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrDuplicateCategory = errors.New("a budget for this category already exists")
)

// budgetStore implements BudgetStoreInterface over a single keyed blob.
// At most one budget may exist per category.
type budgetStore struct {
	mu    sync.RWMutex
	blobs BlobStore
	items []models.Budget
}

// NewBudgetStore creates a new budget store
func NewBudgetStore(blobs BlobStore) BudgetStoreInterface {
	return &budgetStore{
		blobs: blobs,
	}
}

// Load reads the persisted collection. Persisted spent values are stale
// by definition; the budget service refreshes them before first use.
func (s *budgetStore) Load() error {
	payload, err := s.blobs.ReadBlob(storage.BudgetsKey)
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}

	items := []models.Budget{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &items); err != nil {
			return fmt.Errorf("failed to decode budgets: %w", err)
		}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	return nil
}

// Add assigns a fresh id and appends the budget with the supplied
// derived spent figure. Fails if a budget for the category already
// exists, leaving the collection untouched.
func (s *budgetStore) Add(input models.BudgetInput, spent float64) (models.Budget, error) {
	if err := input.Validate(); err != nil {
		return models.Budget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Category == input.Category {
			return models.Budget{}, ErrDuplicateCategory
		}
	}

	now := time.Now().UTC()
	budget := models.Budget{
		ID:        uuid.New(),
		Category:  input.Category,
		Amount:    input.Amount,
		Period:    input.Period,
		Spent:     spent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := make([]models.Budget, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, budget)

	if err := s.persist(next); err != nil {
		return models.Budget{}, err
	}

	s.items = next
	return budget, nil
}

// Update replaces category, amount and period of the budget with the
// given id and stores the freshly derived spent figure. Changing the
// category onto one held by another budget is rejected.
func (s *budgetStore) Update(id uuid.UUID, input models.BudgetInput, spent float64) (models.Budget, error) {
	if err := input.Validate(); err != nil {
		return models.Budget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Budget{}, ErrBudgetNotFound
	}

	for i := range s.items {
		if i != idx && s.items[i].Category == input.Category {
			return models.Budget{}, ErrDuplicateCategory
		}
	}

	updated := s.items[idx]
	updated.Category = input.Category
	updated.Amount = input.Amount
	updated.Period = input.Period
	updated.Spent = spent
	updated.UpdatedAt = time.Now().UTC()

	next := make([]models.Budget, len(s.items))
	copy(next, s.items)
	next[idx] = updated

	if err := s.persist(next); err != nil {
		return models.Budget{}, err
	}

	s.items = next
	return updated, nil
}

// Delete removes the budget with the given id.
func (s *budgetStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrBudgetNotFound
	}

	next := make([]models.Budget, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	if err := s.persist(next); err != nil {
		return err
	}

	s.items = next
	return nil
}

// GetByID retrieves a budget by id
func (s *budgetStore) GetByID(id uuid.UUID) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Budget{}, ErrBudgetNotFound
	}
	return s.items[idx], nil
}

// ByCategory returns the single budget for a category.
func (s *budgetStore) ByCategory(category string) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].Category == category {
			return s.items[i], nil
		}
	}
	return models.Budget{}, ErrBudgetNotFound
}

// List returns a snapshot of the whole collection in insertion order.
func (s *budgetStore) List() []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Budget, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// RefreshSpent replaces every budget's spent figure in place and
// persists the refreshed collection once. Budgets missing from the map
// keep their current figure. An empty collection is a cheap no-op write.
func (s *budgetStore) RefreshSpent(spentByID map[uuid.UUID]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Budget, len(s.items))
	copy(next, s.items)
	for i := range next {
		if spent, ok := spentByID[next[i].ID]; ok {
			next[i].Spent = spent
		}
	}

	if err := s.persist(next); err != nil {
		return err
	}

	s.items = next
	return nil
}

func (s *budgetStore) persist(items []models.Budget) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}

	if err := s.blobs.WriteBlob(storage.BudgetsKey, payload); err != nil {
		return fmt.Errorf("failed to persist budgets: %w", err)
	}
	return nil
}

func (s *budgetStore) indexOf(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
