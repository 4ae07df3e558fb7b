package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nxrts/nexus-finance/internal/ledger"
	"github.com/nxrts/nexus-finance/internal/models"
)

// A bare JSON array is browser-era data and reads as schema version 0.
func (suite *TestSuiteStandard) TestLegacyIncomeMigration() {
	blob := `[{"id":"abc","invoiceId":"#INC-2026-001","clientName":"Acme Corp","amount":5000000,"date":"2026-08-01","status":"Lunas"}]`
	suite.Require().Nil(suite.store.Set(ledger.KeyIncomes, []byte(blob)))

	incomes := suite.repo.Incomes()
	suite.Require().Len(incomes, 1)

	suite.Assert().Equal("Acme Corp", incomes[0].Source)
	suite.Assert().Equal(models.IncomeStatusReceived, incomes[0].Status)
	suite.Assert().True(decimal.NewFromInt(5000000).Equal(incomes[0].Amount))
	suite.Assert().Equal("2026-08-01", incomes[0].Date.String())
}

// The migrated blob is written back once; later reads see a current
// version envelope and leave the store untouched.
func (suite *TestSuiteStandard) TestMigrationWriteBack() {
	blob := `[{"id":"abc","clientName":"Acme Corp","amount":5000000,"date":"2026-08-01","status":"Lunas"}]`
	suite.Require().Nil(suite.store.Set(ledger.KeyIncomes, []byte(blob)))

	_ = suite.repo.Incomes()

	migrated, err := suite.store.Get(ledger.KeyIncomes)
	suite.Require().Nil(err)
	suite.Assert().Contains(string(migrated), `"version":1`)
	suite.Assert().Contains(string(migrated), `"source":"Acme Corp"`)
	suite.Assert().NotContains(string(migrated), "clientName")

	// The second read must not rewrite the blob
	_ = suite.repo.Incomes()
	second, err := suite.store.Get(ledger.KeyIncomes)
	suite.Require().Nil(err)
	suite.Assert().Equal(string(migrated), string(second))
}

// When both clientName and source are present, source wins.
func (suite *TestSuiteStandard) TestMigrationSourceWins() {
	blob := `[{"id":"abc","clientName":"Old Name","source":"New Name","amount":100,"date":"2026-08-01","status":"Received"}]`
	suite.Require().Nil(suite.store.Set(ledger.KeyIncomes, []byte(blob)))

	incomes := suite.repo.Incomes()
	suite.Require().Len(incomes, 1)
	suite.Assert().Equal("New Name", incomes[0].Source)
}

func (suite *TestSuiteStandard) TestLegacyExpenseMigration() {
	tests := []struct {
		name        string
		blob        string
		invoiceID   string
		description string
		status      models.ExpenseStatus
	}{
		{
			"vendor folds into empty description",
			`[{"id":"abc1234","vendor":"Warung Sederhana","amount":150000,"date":"2026-08-02","status":"Dibayar","category":"Makan & Minum"}]`,
			"#EXP-2026-ABC",
			"Warung Sederhana",
			models.ExpenseStatusPaid,
		},
		{
			"vendor prefixes an existing description",
			`[{"id":"xyz9","vendor":"Grab","description":"airport ride","amount":250000,"date":"2026-07-15","status":"Menunggu","category":"Transportasi"}]`,
			"#EXP-2026-XYZ",
			"Grab - airport ride",
			models.ExpenseStatusAwaiting,
		},
		{
			"vendor already contained in description",
			`[{"id":"q","vendor":"Grab","description":"Grab to office","amount":50000,"date":"2026-07-16","status":"Paid","category":"Transportasi"}]`,
			"#EXP-2026-Q",
			"Grab to office",
			models.ExpenseStatusPaid,
		},
		{
			"existing invoiceId is kept",
			`[{"id":"abc","invoiceId":"#EXP-2026-042","amount":75000,"date":"2026-08-03","status":"Dibayar","category":"Belanja Rutin"}]`,
			"#EXP-2026-042",
			"",
			models.ExpenseStatusPaid,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(_ *testing.T) {
			suite.SetupTest()
			suite.Require().Nil(suite.store.Set(ledger.KeyExpenses, []byte(tt.blob)))

			expenses := suite.repo.Expenses()
			suite.Require().Len(expenses, 1)
			suite.Assert().Equal(tt.invoiceID, expenses[0].InvoiceID)
			suite.Assert().Equal(tt.description, expenses[0].Description)
			suite.Assert().Equal(tt.status, expenses[0].Status)
		})
	}
}

// Cancelled records survive migration in storage but are filtered on read.
func (suite *TestSuiteStandard) TestCancelledExpensesFiltered() {
	blob := `[
		{"id":"a","amount":100,"date":"2026-08-01","status":"Batal","category":"Transportasi"},
		{"id":"b","amount":200,"date":"2026-08-02","status":"Dibayar","category":"Transportasi"}
	]`
	suite.Require().Nil(suite.store.Set(ledger.KeyExpenses, []byte(blob)))

	expenses := suite.repo.Expenses()
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("b", expenses[0].ID)

	// Storage still holds both records
	migrated, err := suite.store.Get(ledger.KeyExpenses)
	suite.Require().Nil(err)
	suite.Assert().Contains(string(migrated), `"Cancelled"`)
}

// Malformed blobs read as empty collections instead of failing.
func (suite *TestSuiteStandard) TestMalformedBlob() {
	suite.Require().Nil(suite.store.Set(ledger.KeyIncomes, []byte(`{"version": oops`)))

	suite.Assert().Empty(suite.repo.Incomes())
}

func (suite *TestSuiteStandard) TestMissingKeyReadsEmpty() {
	suite.Assert().Empty(suite.repo.Incomes())
	suite.Assert().Empty(suite.repo.Expenses())
	suite.Assert().Empty(suite.repo.Categories())
	suite.Assert().Empty(suite.repo.Users())
}

// Amounts survive the migration write-back without being coerced
// through floating point.
func (suite *TestSuiteStandard) TestMigrationPreservesLargeAmounts() {
	blob := `[{"id":"abc","clientName":"Acme","amount":900719925474099,"date":"2026-08-01","status":"Lunas"}]`
	suite.Require().Nil(suite.store.Set(ledger.KeyIncomes, []byte(blob)))

	incomes := suite.repo.Incomes()
	suite.Require().Len(incomes, 1)
	suite.Assert().Equal("900719925474099", incomes[0].Amount.String())

	migrated, err := suite.store.Get(ledger.KeyIncomes)
	suite.Require().Nil(err)
	suite.Assert().Contains(string(migrated), "900719925474099")
}
