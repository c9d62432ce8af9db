package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"elaundry/pkg/middleware"
)

// renderHTML writes the status and streams node. Once the header is out a
// render error can only be logged.
func renderHTML(c echo.Context, code int, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	if err := node.Render(c.Response()); err != nil {
		middleware.LoggerFrom(c).Error("render page", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}
	return nil
}
