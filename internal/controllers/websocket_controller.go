package controllers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"elaundry/internal/dto"
	"elaundry/internal/entities"
	"elaundry/internal/livepage"
	appwebsocket "elaundry/pkg/websocket"
)

type WebSocketController struct {
	manager  *livepage.Manager
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewWebSocketController accepts connections from allowedOrigins only; an
// empty list accepts any origin.
func NewWebSocketController(manager *livepage.Manager, allowedOrigins []string, logger *zap.Logger) *WebSocketController {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WebSocketController{
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin] || origin == "http://"+r.Host || origin == "https://"+r.Host
			},
		},
		logger: logger,
	}
}

// ServeWs runs one live page session for the life of the connection.
func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	conn, err := c.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed", zap.Error(err))
		return nil
	}

	reqCtx := ctx.Request().Context()
	client := appwebsocket.NewClient(conn, c.logger)
	go client.WritePump()

	session, err := c.manager.Open(reqCtx, client, entities.BranchID(ctx.QueryParam("selected")))
	if err != nil {
		c.logger.Error("could not open live session", zap.Error(err))
		_ = client.Send(appwebsocket.NewEnvelope(dto.EvtError, dto.ErrorPayload{Message: "The page could not be loaded. Please refresh."}))
		client.Close()
		return nil
	}
	defer c.manager.Close(session.ID)

	client.ReadPump(func(msg []byte) {
		session.Handle(reqCtx, msg)
	})
	return nil
}
