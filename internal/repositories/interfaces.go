package repositories

import (
	"pocket-ledger/internal/models"

	"github.com/google/uuid"
)

// BlobStore is the persistence collaborator: two independently keyed
// blobs, each holding one whole serialized collection. A missing key
// reads as a nil payload.
type BlobStore interface {
	ReadBlob(key string) ([]byte, error)
	WriteBlob(key string, payload []byte) error
}

// TransactionStoreInterface owns the canonical ordered transaction
// collection. Every mutation persists the full collection before it is
// considered committed; a failed write leaves the in-memory view at the
// prior state.
type TransactionStoreInterface interface {
	Load() error
	Add(input models.TransactionInput) (models.Transaction, error)
	Update(id uuid.UUID, input models.TransactionInput) (models.Transaction, error)
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (models.Transaction, error)
	List() []models.Transaction
	ListByDateRange(start, end string) []models.Transaction
	ListFiltered(filters models.TransactionFilters) []models.Transaction
	TotalByKind(kind string) float64
}

// BudgetStoreInterface owns the budget collection. Spent is a derived
// figure: callers supply it on add/update and refresh it wholesale when
// the transaction collection changes.
type BudgetStoreInterface interface {
	Load() error
	Add(input models.BudgetInput, spent float64) (models.Budget, error)
	Update(id uuid.UUID, input models.BudgetInput, spent float64) (models.Budget, error)
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (models.Budget, error)
	ByCategory(category string) (models.Budget, error)
	List() []models.Budget
	RefreshSpent(spentByID map[uuid.UUID]float64) error
}
