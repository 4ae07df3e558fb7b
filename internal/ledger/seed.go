package ledger

import (
	"github.com/nxrts/nexus-finance/internal/models"
)

// defaultCategories is the fixed category palette a fresh install
// starts with. Names match the original product's seed data.
var defaultCategories = []models.Category{
	{ID: "1", Name: "Gaji Bulanan", Type: models.CategoryTypeIncome, Status: models.CategoryStatusActive, Icon: "briefcase", Color: "emerald"},
	{ID: "2", Name: "Bonus & Insentif", Type: models.CategoryTypeIncome, Status: models.CategoryStatusActive, Icon: "star", Color: "emerald"},
	{ID: "3", Name: "Investasi", Type: models.CategoryTypeIncome, Status: models.CategoryStatusActive, Icon: "trending-up", Color: "emerald"},
	{ID: "4", Name: "Makan & Minum", Type: models.CategoryTypeExpense, Status: models.CategoryStatusActive, Icon: "coffee", Color: "rose"},
	{ID: "5", Name: "Transportasi", Type: models.CategoryTypeExpense, Status: models.CategoryStatusActive, Icon: "car", Color: "rose"},
	{ID: "6", Name: "Belanja Rutin", Type: models.CategoryTypeExpense, Status: models.CategoryStatusActive, Icon: "shopping-bag", Color: "rose"},
	{ID: "7", Name: "Tagihan & Air", Type: models.CategoryTypeExpense, Status: models.CategoryStatusActive, Icon: "file-text", Color: "rose"},
}

// Initialize ensures every collection key exists. Categories are
// seeded with the default palette on first run; incomes, expenses and
// users start empty. Existing data is never touched.
func (r *Repository) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok, err := r.store.Has(KeyCategories)
	if err != nil {
		return err
	}
	if !ok {
		if err := r.persist(KeyCategories, len(categoryMigrations), defaultCategories); err != nil {
			return err
		}
	}

	empty := []struct {
		key     string
		version int
	}{
		{KeyIncomes, len(incomeMigrations)},
		{KeyExpenses, len(expenseMigrations)},
		{KeyUsers, len(userMigrations)},
	}

	for _, collection := range empty {
		ok, err := r.store.Has(collection.key)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		if err := r.persist(collection.key, collection.version, []struct{}{}); err != nil {
			return err
		}
	}

	return nil
}
