package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"elaundry/internal/dto"
	"elaundry/internal/orderform"
	"elaundry/internal/services"
	"elaundry/internal/views"
	"elaundry/pkg/api"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/utils"
)

type OrderController struct {
	branchService  *services.BranchService
	orderService   *services.OrderService
	contentService *services.ContentService
	logger         *zap.Logger
}

func NewOrderController(
	branchService *services.BranchService,
	orderService *services.OrderService,
	contentService *services.ContentService,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		branchService:  branchService,
		orderService:   orderService,
		contentService: contentService,
		logger:         logger,
	}
}

func (c *OrderController) submit(ctx echo.Context, body dto.CreateOrderDTO) (*orderform.Form, orderform.Result, error) {
	reqCtx := ctx.Request().Context()

	branches, err := c.branchService.Catalog(reqCtx)
	if err != nil {
		return nil, orderform.Result{}, err
	}
	form := c.orderService.NewForm(branches)
	if err := form.SetAll(body.Fields()); err != nil {
		return nil, orderform.Result{}, apperrors.NewBadRequestError("Invalid order form")
	}

	res := form.Submit(reqCtx)
	if res.Err != nil {
		c.logger.Error("order submit failed", zap.Error(res.Err))
	}
	return form, res, nil
}

func statusOf(res orderform.Result) int {
	switch {
	case res.Accepted:
		return http.StatusCreated
	case res.State == orderform.StateValidationFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// SubmitForm handles the plain HTML form post and answers with the form
// redrawn around the visitor's input.
func (c *OrderController) SubmitForm(ctx echo.Context) error {
	var body dto.CreateOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid form data"), c.logger)
	}

	form, res, err := c.submit(ctx, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	code := statusOf(res)
	if code == http.StatusCreated {
		code = http.StatusOK
	}
	page := views.Page{Content: c.contentService.Content(), Form: views.FormViewOf(form)}
	return renderHTML(ctx, code, views.OrderPage(page))
}

func (c *OrderController) CreateOrder(ctx echo.Context) error {
	var body dto.CreateOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid JSON body"), c.logger)
	}

	form, res, err := c.submit(ctx, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	out := dto.OrderResultDTO{Result: res, Draft: form.Draft()}
	if res.Accepted {
		return api.SuccessOne(ctx, http.StatusCreated, res.Notification.Message, out)
	}
	return api.Failure(ctx, statusOf(res), res.Notification.Message, out)
}
