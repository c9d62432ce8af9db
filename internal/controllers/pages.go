package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"elaundry/internal/entities"
	"elaundry/internal/services"
	"elaundry/internal/views"
	"elaundry/pkg/config"
	"elaundry/pkg/geo"
	"elaundry/pkg/utils"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PageController struct {
	branchService  *services.BranchService
	orderService   *services.OrderService
	profileService *services.ProfileService
	contentService *services.ContentService
	mapCfg         config.MapConfig
	carouselCfg    config.CarouselConfig
	logger         *zap.Logger
}

func NewPageController(
	branchService *services.BranchService,
	orderService *services.OrderService,
	profileService *services.ProfileService,
	contentService *services.ContentService,
	mapCfg config.MapConfig,
	carouselCfg config.CarouselConfig,
	logger *zap.Logger,
) *PageController {
	return &PageController{
		branchService:  branchService,
		orderService:   orderService,
		profileService: profileService,
		contentService: contentService,
		mapCfg:         mapCfg,
		carouselCfg:    carouselCfg,
		logger:         logger,
	}
}

// page builds the parts shared by every page: copy and a fresh order form.
func (c *PageController) page(ctx context.Context) (views.Page, error) {
	branches, err := c.branchService.Catalog(ctx)
	if err != nil {
		return views.Page{}, err
	}
	return views.Page{
		Content: c.contentService.Content(),
		Form:    views.FormViewOf(c.orderService.NewForm(branches)),
	}, nil
}

// Landing renders the home page. q and selected give the directory state
// for browsers without the live script.
func (c *PageController) Landing(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	page, err := c.page(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	page.Live = true

	view, err := c.branchService.Preview(reqCtx, ctx.QueryParam("q"), entities.BranchID(ctx.QueryParam("selected")))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return renderHTML(ctx, http.StatusOK, views.LandingPage(views.LandingData{
		Page:   page,
		Slides: views.Slides{Images: c.carouselCfg.Images},
		Map: views.MapView{
			View:        *view,
			Center:      geo.LatLng{Lat: c.mapCfg.CenterLat, Lng: c.mapCfg.CenterLng},
			Zoom:        c.mapCfg.Zoom,
			TileURL:     c.mapCfg.TileURL,
			Attribution: c.mapCfg.Attribution,
		},
	}))
}

func (c *PageController) Service(ctx echo.Context) error {
	page, err := c.page(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return renderHTML(ctx, http.StatusOK, views.ServicePage(page))
}

func (c *PageController) Profile(ctx echo.Context) error {
	page, err := c.page(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return renderHTML(ctx, http.StatusOK, views.ProfilePage(views.ProfileData{
		Page:    page,
		Profile: c.profileService.Profile(),
		Orders:  c.profileService.Orders(),
	}))
}

// ExportOrders sends the order history as an Excel file.
func (c *PageController) ExportOrders(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := c.profileService.ExportOrders(&buf); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("export orders: %w", err), c.logger)
	}

	fileName := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
