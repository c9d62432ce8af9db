package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"elaundry/internal/directory"
	"elaundry/internal/entities"
	"elaundry/internal/repositories"
	"elaundry/internal/services"
)

func newBranchController() *BranchController {
	branches := append(repositories.DefaultBranches(), entities.Branch{
		ID: "3", Name: "Uttara Branch", Lat: 23.8759, Lng: 90.3795, Address: null.StringFrom("Sector 7"),
	})
	repo := repositories.NewStaticBranchRepository(branches, zap.NewNop())
	return NewBranchController(services.NewBranchService(repo, directory.Options{}, zap.NewNop()), zap.NewNop())
}

func callBranch(c *BranchController, id string) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/branches/"+id+"/call", nil), rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	_ = c.Call(ctx)
	return rec
}

func TestCall(t *testing.T) {
	c := newBranchController()

	rec := callBranch(c, "1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "tel:+8801712345678", rec.Header().Get(echo.HeaderLocation))

	rec = callBranch(c, "3")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "This branch has no phone number")

	rec = callBranch(c, "9")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
