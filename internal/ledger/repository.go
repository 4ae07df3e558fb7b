// Package ledger implements the typed repository over the record
// store: per-collection read/save with forward migration of legacy
// blobs, and record-level helpers for the API layer.
package ledger

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nxrts/nexus-finance/internal/models"
	"github.com/nxrts/nexus-finance/internal/storage"
)

// Storage keys, one JSON blob per collection.
const (
	KeyIncomes    = "finance_incomes"
	KeyExpenses   = "finance_expenses"
	KeyCategories = "finance_categories"
	KeyUsers      = "finance_users"
)

// Repository is the single owner of the record store.
//
// All operations hold one mutex for their full duration, including the
// read-modify-write cycles of the record-level helpers. This enforces
// the single-writer-at-a-time model: there is no compare-and-swap in
// the store, so concurrent writers would silently lose updates.
type Repository struct {
	mu    sync.Mutex
	store storage.Store
}

// New returns a Repository on top of the given store.
func New(store storage.Store) *Repository {
	return &Repository{store: store}
}

// load reads, migrates and decodes one collection.
//
// Liveness over correctness: a missing key or a malformed blob reads
// as the empty collection and is logged, never returned as an error.
func load[T any](r *Repository, key string, migrations []migration) []T {
	raw, err := r.store.Get(key)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Error().Err(err).Str("key", key).Msg("reading collection failed")
		}
		return []T{}
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed collection blob, treating as empty")
		return []T{}
	}

	if migrate(&env, migrations) {
		// Persist the migrated blob once instead of re-deriving the
		// migration on every read. Best effort: a failed write-back
		// only means the migration runs again next time.
		if err := r.persist(key, env.Version, env.Records); err != nil {
			log.Error().Err(err).Str("key", key).Msg("persisting migrated collection failed")
		} else {
			log.Info().Str("key", key).Int("version", env.Version).Msg("migrated collection")
		}
	}

	records := make([]T, 0, len(env.Records))
	raw, err = json.Marshal(env.Records)
	if err == nil {
		err = json.Unmarshal(raw, &records)
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("decoding collection failed, treating as empty")
		return []T{}
	}

	return records
}

// persist writes one collection blob in envelope form.
func (r *Repository) persist(key string, version int, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}

	blob, err := json.Marshal(struct {
		Version int             `json:"version"`
		Records json.RawMessage `json:"records"`
	}{Version: version, Records: raw})
	if err != nil {
		return err
	}

	return r.store.Set(key, blob)
}

// Incomes returns all income records, migrated to the current shape.
func (r *Repository) Incomes() []models.Income {
	r.mu.Lock()
	defer r.mu.Unlock()

	return load[models.Income](r, KeyIncomes, incomeMigrations)
}

// SaveIncomes overwrites the income collection.
func (r *Repository) SaveIncomes(incomes []models.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.persist(KeyIncomes, len(incomeMigrations), incomes)
}

// Expenses returns all expense records, migrated to the current shape.
// Records left cancelled by the status migration stay in storage but
// are excluded here.
func (r *Repository) Expenses() []models.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.expensesLocked()
}

func (r *Repository) expensesLocked() []models.Expense {
	all := load[models.Expense](r, KeyExpenses, expenseMigrations)

	expenses := make([]models.Expense, 0, len(all))
	for _, expense := range all {
		if expense.Status == models.ExpenseStatusCancelled {
			continue
		}
		expenses = append(expenses, expense)
	}

	return expenses
}

// SaveExpenses overwrites the expense collection.
func (r *Repository) SaveExpenses(expenses []models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.persist(KeyExpenses, len(expenseMigrations), expenses)
}

// Categories returns all categories.
func (r *Repository) Categories() []models.Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	return load[models.Category](r, KeyCategories, categoryMigrations)
}

// SaveCategories overwrites the category collection.
func (r *Repository) SaveCategories(categories []models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.persist(KeyCategories, len(categoryMigrations), categories)
}

// Users returns all user records.
func (r *Repository) Users() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	return load[models.User](r, KeyUsers, userMigrations)
}

// SaveUsers overwrites the user collection.
func (r *Repository) SaveUsers(users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.persist(KeyUsers, len(userMigrations), users)
}

// NewInvoiceNumber generates a display invoice number such as
// "#INC-2026-042".
func NewInvoiceNumber(prefix string, year int) string {
	return fmt.Sprintf("#%s-%d-%03d", prefix, year, rand.IntN(1000))
}

// NewID generates an opaque unique record identifier.
func NewID() string {
	return uuid.NewString()
}
