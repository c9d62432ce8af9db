package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"elaundry/internal/entities"
	"elaundry/internal/services"
	"elaundry/pkg/api"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/utils"
)

type BranchController struct {
	branchService *services.BranchService
	logger        *zap.Logger
}

func NewBranchController(branchService *services.BranchService, logger *zap.Logger) *BranchController {
	return &BranchController{branchService: branchService, logger: logger}
}

func (c *BranchController) GetBranches(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	branches, total, err := c.branchService.GetBranches(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Branches", branches, total, filter.Page, filter.Limit)
}

func (c *BranchController) FindBranch(ctx echo.Context) error {
	id := entities.BranchID(ctx.Param("id"))

	res, err := c.branchService.FindBranch(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Branch not found"), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Branch", res)
}

// Call redirects to the branch's tel: URI so a plain link starts the dialer.
func (c *BranchController) Call(ctx echo.Context) error {
	id := entities.BranchID(ctx.Param("id"))

	uri, err := c.branchService.CallTarget(ctx.Request().Context(), id)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.ErrorResponse(ctx, apperrors.NewNotFoundError("Branch not found"), c.logger)
	case errors.Is(err, apperrors.ErrNoPhone):
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusUnprocessableEntity, "This branch has no phone number", err, nil), c.logger)
	case err != nil:
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.Redirect(http.StatusFound, uri)
}

// Viewport returns the settled directory for ?search= and ?selected=.
func (c *BranchController) Viewport(ctx echo.Context) error {
	view, err := c.branchService.Preview(
		ctx.Request().Context(),
		ctx.QueryParam("search"),
		entities.BranchID(ctx.QueryParam("selected")),
	)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Directory view", view)
}
