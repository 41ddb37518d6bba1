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
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionStore implements TransactionStoreInterface over a single
// keyed blob. The in-memory slice is the natural insertion order of the
// collection; presentation layers re-sort as needed.
type transactionStore struct {
	mu    sync.RWMutex
	blobs BlobStore
	items []models.Transaction
}

// NewTransactionStore creates a new transaction store
func NewTransactionStore(blobs BlobStore) TransactionStoreInterface {
	return &transactionStore{
		blobs: blobs,
	}
}

// Load reads the persisted collection. A missing blob means an empty
// collection, which also covers re-initialization after an external
// clear of the storage.
func (s *transactionStore) Load() error {
	payload, err := s.blobs.ReadBlob(storage.TransactionsKey)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	items := []models.Transaction{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &items); err != nil {
			return fmt.Errorf("failed to decode transactions: %w", err)
		}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	return nil
}

// Add assigns a fresh id and appends the transaction to the end of the
// collection. Validation is the caller's responsibility, but invalid
// input is still rejected here so the store never persists a corrupt
// collection.
func (s *transactionStore) Add(input models.TransactionInput) (models.Transaction, error) {
	if err := input.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn := input.Transaction(uuid.New(), time.Now().UTC())

	next := make([]models.Transaction, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, txn)

	if err := s.persist(next); err != nil {
		return models.Transaction{}, err
	}

	s.items = next
	return txn, nil
}

// Update replaces all fields of the transaction with the given id,
// keeping id and creation time fixed and its position in the collection
// unchanged.
func (s *transactionStore) Update(id uuid.UUID, input models.TransactionInput) (models.Transaction, error) {
	if err := input.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Transaction{}, ErrTransactionNotFound
	}

	updated := input.Transaction(id, time.Now().UTC())
	updated.CreatedAt = s.items[idx].CreatedAt

	next := make([]models.Transaction, len(s.items))
	copy(next, s.items)
	next[idx] = updated

	if err := s.persist(next); err != nil {
		return models.Transaction{}, err
	}

	s.items = next
	return updated, nil
}

// Delete removes the transaction with the given id.
func (s *transactionStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTransactionNotFound
	}

	next := make([]models.Transaction, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	if err := s.persist(next); err != nil {
		return err
	}

	s.items = next
	return nil
}

// GetByID retrieves a transaction by id
func (s *transactionStore) GetByID(id uuid.UUID) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Transaction{}, ErrTransactionNotFound
	}
	return s.items[idx], nil
}

// List returns a snapshot of the whole collection in insertion order.
func (s *transactionStore) List() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Transaction, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// ListByDateRange returns transactions with start <= date <= end.
// Lexicographic comparison is valid because of the fixed YYYY-MM-DD
// format.
func (s *transactionStore) ListByDateRange(start, end string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Transaction, 0)
	for _, txn := range s.items {
		if txn.Date >= start && txn.Date <= end {
			matched = append(matched, txn)
		}
	}
	return matched
}

// ListFiltered returns transactions passing every set filter field, in
// insertion order. Empty filters match the whole collection.
func (s *transactionStore) ListFiltered(filters models.TransactionFilters) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Transaction, 0)
	for i := range s.items {
		if filters.Matches(&s.items[i]) {
			matched = append(matched, s.items[i])
		}
	}
	return matched
}

// TotalByKind sums amounts over all transactions of the given kind.
// Returns 0 for an empty store.
func (s *transactionStore) TotalByKind(kind string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, txn := range s.items {
		if txn.Kind == kind {
			total += txn.Amount
		}
	}
	return total
}

// persist writes the full collection. The caller swaps the in-memory
// view only after a nil return, so readers never observe a state that
// is not durable.
func (s *transactionStore) persist(items []models.Transaction) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	if err := s.blobs.WriteBlob(storage.TransactionsKey, payload); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	return nil
}

func (s *transactionStore) indexOf(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
