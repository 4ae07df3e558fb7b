package v1_test

import (
	"net/http"

	v1 "github.com/nxrts/nexus-finance/internal/controllers/v1"
	"github.com/nxrts/nexus-finance/internal/models"
	"github.com/nxrts/nexus-finance/test"
)

func (suite *TestSuiteStandard) TestUsersCreate() {
	user := suite.createTestUser(v1.UserEditable{
		Name:       "Budi Santoso",
		Email:      "budi@example.com",
		Role:       models.UserRoleAdmin,
		Department: "Finance",
		Avatar:     "BS",
	})

	suite.Assert().NotEmpty(user.Data.ID)
	suite.Assert().Equal(models.UserStatusActive, user.Data.Status)
	suite.Assert().Equal(models.UserRoleAdmin, user.Data.Role)
}

func (suite *TestSuiteStandard) TestUsersCreateFails() {
	_ = suite.createTestUser(v1.UserEditable{Name: "Oops", Role: "owner"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUsersGetFilter() {
	_ = suite.createTestUser(v1.UserEditable{Name: "Siti Rahayu", Role: models.UserRoleEditor, Department: "Finance"})
	_ = suite.createTestUser(v1.UserEditable{Name: "Budi Santoso", Role: models.UserRoleViewer, Department: "Operations"})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/users?role=viewer", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Budi Santoso", response.Data[0].Name)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/users?search=finance", "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Siti Rahayu", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestUsersUpdateAndDelete() {
	user := suite.createTestUser(v1.UserEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, user.Data.Links.Self, map[string]any{
		"role": "viewer",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.UserRoleViewer, response.Data.Role)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, user.Data.Links.Self+"?confirm=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
