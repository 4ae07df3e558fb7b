package models

// CategoryType separates income categories from expense categories.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// CategoryStatus marks a category as selectable in the record forms.
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// Category is a transaction category. Income sources and expense
// categories reference it loosely by name.
type Category struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Type   CategoryType   `json:"type"`
	Status CategoryStatus `json:"status"`
	Icon   string         `json:"icon,omitempty"`
	Color  string         `json:"color,omitempty"`
}

// Validate checks the record invariants.
func (c Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameRequired
	}

	if c.Type != CategoryTypeIncome && c.Type != CategoryTypeExpense {
		return ErrCategoryTypeInvalid
	}

	if c.Status != CategoryStatusActive && c.Status != CategoryStatusInactive {
		return ErrCategoryStatusInvalid
	}

	return nil
}
