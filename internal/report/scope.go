package report

import (
	"errors"
	"fmt"

	"github.com/nxrts/nexus-finance/internal/models"
)

// ErrScopeInvalid is returned for unparseable scope selectors.
var ErrScopeInvalid = errors.New("the scope must be \"all\" or \"realized\"")

// Scope selects which records count toward report totals.
//
// The original system was inconsistent here: headline totals only
// counted completed records while trends and KPIs counted everything.
// Instead of silently picking one, the scope is an explicit parameter
// applied uniformly to every report operation; ScopeAll matches the
// reporting pages' behavior and is the default.
type Scope string

const (
	// ScopeAll counts every record regardless of status.
	ScopeAll Scope = "all"

	// ScopeRealized only counts received incomes and paid expenses.
	ScopeRealized Scope = "realized"
)

// ParseScope parses a scope selector, defaulting to ScopeAll.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeRealized:
		return ScopeRealized, nil
	}

	return "", fmt.Errorf("%w, got %q", ErrScopeInvalid, s)
}

func (s Scope) includesIncome(income models.Income) bool {
	return s != ScopeRealized || income.Realized()
}

func (s Scope) includesExpense(expense models.Expense) bool {
	return s != ScopeRealized || expense.Realized()
}
