package ledger

import (
	"fmt"

	"github.com/nxrts/nexus-finance/internal/models"
)

func errNotFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
}

// Income returns a single income record by id.
func (r *Repository) Income(id string) (models.Income, error) {
	for _, income := range r.Incomes() {
		if income.ID == id {
			return income, nil
		}
	}

	return models.Income{}, errNotFound("income")
}

// CreateIncome validates and appends a new income record. The id and,
// if absent, the invoice number are generated.
func (r *Repository) CreateIncome(income models.Income) (models.Income, error) {
	income.ID = NewID()
	if income.InvoiceID == "" {
		income.InvoiceID = NewInvoiceNumber("INC", income.Date.Year())
	}

	if err := income.Validate(); err != nil {
		return models.Income{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	incomes := load[models.Income](r, KeyIncomes, incomeMigrations)
	incomes = append(incomes, income)

	return income, r.persist(KeyIncomes, len(incomeMigrations), incomes)
}

// UpdateIncome replaces the editable fields of an income record. The
// id and invoice number of the stored record are kept.
func (r *Repository) UpdateIncome(id string, updated models.Income) (models.Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	incomes := load[models.Income](r, KeyIncomes, incomeMigrations)
	for i, income := range incomes {
		if income.ID != id {
			continue
		}

		updated.ID = income.ID
		updated.InvoiceID = income.InvoiceID
		if err := updated.Validate(); err != nil {
			return models.Income{}, err
		}

		incomes[i] = updated
		return updated, r.persist(KeyIncomes, len(incomeMigrations), incomes)
	}

	return models.Income{}, errNotFound("income")
}

// DeleteIncome removes exactly one income record by id.
func (r *Repository) DeleteIncome(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	incomes := load[models.Income](r, KeyIncomes, incomeMigrations)
	for i, income := range incomes {
		if income.ID == id {
			incomes = append(incomes[:i], incomes[i+1:]...)
			return r.persist(KeyIncomes, len(incomeMigrations), incomes)
		}
	}

	return errNotFound("income")
}

// Expense returns a single expense record by id.
func (r *Repository) Expense(id string) (models.Expense, error) {
	for _, expense := range r.Expenses() {
		if expense.ID == id {
			return expense, nil
		}
	}

	return models.Expense{}, errNotFound("expense")
}

// CreateExpense validates and appends a new expense record.
func (r *Repository) CreateExpense(expense models.Expense) (models.Expense, error) {
	expense.ID = NewID()
	if expense.InvoiceID == "" {
		expense.InvoiceID = NewInvoiceNumber("EXP", expense.Date.Year())
	}

	if err := expense.Validate(); err != nil {
		return models.Expense{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	expenses := load[models.Expense](r, KeyExpenses, expenseMigrations)
	expenses = append(expenses, expense)

	return expense, r.persist(KeyExpenses, len(expenseMigrations), expenses)
}

// UpdateExpense replaces the editable fields of an expense record.
func (r *Repository) UpdateExpense(id string, updated models.Expense) (models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expenses := load[models.Expense](r, KeyExpenses, expenseMigrations)
	for i, expense := range expenses {
		if expense.ID != id || expense.Status == models.ExpenseStatusCancelled {
			continue
		}

		updated.ID = expense.ID
		updated.InvoiceID = expense.InvoiceID
		if err := updated.Validate(); err != nil {
			return models.Expense{}, err
		}

		expenses[i] = updated
		return updated, r.persist(KeyExpenses, len(expenseMigrations), expenses)
	}

	return models.Expense{}, errNotFound("expense")
}

// DeleteExpense removes exactly one expense record by id.
func (r *Repository) DeleteExpense(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	expenses := load[models.Expense](r, KeyExpenses, expenseMigrations)
	for i, expense := range expenses {
		if expense.ID == id {
			expenses = append(expenses[:i], expenses[i+1:]...)
			return r.persist(KeyExpenses, len(expenseMigrations), expenses)
		}
	}

	return errNotFound("expense")
}

// Category returns a single category by id.
func (r *Repository) Category(id string) (models.Category, error) {
	for _, category := range r.Categories() {
		if category.ID == id {
			return category, nil
		}
	}

	return models.Category{}, errNotFound("category")
}

// CreateCategory validates and appends a new category.
func (r *Repository) CreateCategory(category models.Category) (models.Category, error) {
	category.ID = NewID()

	if err := category.Validate(); err != nil {
		return models.Category{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	categories := load[models.Category](r, KeyCategories, categoryMigrations)
	categories = append(categories, category)

	return category, r.persist(KeyCategories, len(categoryMigrations), categories)
}

// UpdateCategory replaces the editable fields of a category.
func (r *Repository) UpdateCategory(id string, updated models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories := load[models.Category](r, KeyCategories, categoryMigrations)
	for i, category := range categories {
		if category.ID != id {
			continue
		}

		updated.ID = category.ID
		if err := updated.Validate(); err != nil {
			return models.Category{}, err
		}

		categories[i] = updated
		return updated, r.persist(KeyCategories, len(categoryMigrations), categories)
	}

	return models.Category{}, errNotFound("category")
}

// DeleteCategory removes a category. Deletion is blocked while any
// income source or expense category still references the category
// name, records would otherwise silently orphan.
func (r *Repository) DeleteCategory(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories := load[models.Category](r, KeyCategories, categoryMigrations)
	for i, category := range categories {
		if category.ID != id {
			continue
		}

		if r.categoryReferencedLocked(category) {
			return models.ErrCategoryInUse
		}

		categories = append(categories[:i], categories[i+1:]...)
		return r.persist(KeyCategories, len(categoryMigrations), categories)
	}

	return errNotFound("category")
}

func (r *Repository) categoryReferencedLocked(category models.Category) bool {
	switch category.Type {
	case models.CategoryTypeIncome:
		for _, income := range load[models.Income](r, KeyIncomes, incomeMigrations) {
			if income.Source == category.Name {
				return true
			}
		}
	case models.CategoryTypeExpense:
		for _, expense := range r.expensesLocked() {
			if expense.Category == category.Name {
				return true
			}
		}
	}

	return false
}

// User returns a single user record by id.
func (r *Repository) User(id string) (models.User, error) {
	for _, user := range r.Users() {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, errNotFound("user")
}

// CreateUser validates and appends a new user record.
func (r *Repository) CreateUser(user models.User) (models.User, error) {
	user.ID = NewID()

	if err := user.Validate(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users := load[models.User](r, KeyUsers, userMigrations)
	users = append(users, user)

	return user, r.persist(KeyUsers, len(userMigrations), users)
}

// UpdateUser replaces the editable fields of a user record.
func (r *Repository) UpdateUser(id string, updated models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := load[models.User](r, KeyUsers, userMigrations)
	for i, user := range users {
		if user.ID != id {
			continue
		}

		updated.ID = user.ID
		if err := updated.Validate(); err != nil {
			return models.User{}, err
		}

		users[i] = updated
		return updated, r.persist(KeyUsers, len(userMigrations), users)
	}

	return models.User{}, errNotFound("user")
}

// DeleteUser removes exactly one user record by id.
func (r *Repository) DeleteUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := load[models.User](r, KeyUsers, userMigrations)
	for i, user := range users {
		if user.ID == id {
			users = append(users[:i], users[i+1:]...)
			return r.persist(KeyUsers, len(userMigrations), users)
		}
	}

	return errNotFound("user")
}
