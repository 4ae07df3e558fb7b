package v1_test

import (
	"net/http"

	v1 "github.com/nxrts/nexus-finance/internal/controllers/v1"
	"github.com/nxrts/nexus-finance/internal/models"
	"github.com/nxrts/nexus-finance/test"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{
		Name:  "Hiburan",
		Type:  models.CategoryTypeExpense,
		Icon:  "film",
		Color: "violet",
	})

	suite.Assert().NotEmpty(category.Data.ID)
	suite.Assert().Equal(models.CategoryStatusActive, category.Data.Status)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Oops", Type: "savings"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Makan & Minum", Type: models.CategoryTypeExpense})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Gaji Bulanan", Type: models.CategoryTypeIncome})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/categories?type=income", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Gaji Bulanan", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Transportasi", Type: models.CategoryTypeExpense})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, category.Data.Links.Self, map[string]any{
		"status": "inactive",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.CategoryStatusInactive, response.Data.Status)
	suite.Assert().Equal("Transportasi", response.Data.Name)
}

// A category referenced by records answers 409 on deletion.
func (suite *TestSuiteStandard) TestCategoriesDeleteConflict() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Makan & Minum", Type: models.CategoryTypeExpense})
	expense := suite.createTestExpense(v1.ExpenseEditable{Category: "Makan & Minum"})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, category.Data.Links.Self+"?confirm=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// Deleting the referencing record unblocks the category
	r = test.Request(suite.T(), suite.router, http.MethodDelete, expense.Data.Links.Self+"?confirm=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, category.Data.Links.Self+"?confirm=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCategoriesDeleteUnconfirmed() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Hiburan", Type: models.CategoryTypeExpense})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
