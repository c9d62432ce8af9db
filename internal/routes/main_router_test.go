package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"elaundry/internal/dto"
	"elaundry/pkg/config"
	"elaundry/pkg/validation"
)

type RouterTestSuite struct {
	suite.Suite
	Echo      *echo.Echo
	Runtime   *Runtime
	StaticDir string
}

func (s *RouterTestSuite) SetupSuite() {
	dir, err := os.MkdirTemp("", "elaundry-static")
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(dir+"/site.css", []byte("body{}"), 0o644))
	s.StaticDir = dir

	cfg := &config.Config{
		Server:   config.ServerConfig{StaticDir: dir},
		Catalog:  config.CatalogConfig{Source: "static"},
		Map:      config.MapConfig{CenterLat: 23.8103, CenterLng: 90.4125, Zoom: 12, TileURL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"},
		Carousel: config.CarouselConfig{Images: []string{"/static/shirt.png", "/static/shirt2.png"}, Interval: time.Hour},
		Order:    config.OrderConfig{DefaultBranch: "1"},
	}

	s.Echo = echo.New()
	s.Echo.Validator = validation.New()
	s.Runtime, err = InitRouter(s.Echo, nil, nil, cfg, zap.NewNop())
	s.Require().NoError(err)
}

func (s *RouterTestSuite) TearDownSuite() {
	s.Runtime.Sessions.CloseAll()
	s.Runtime.Bus.Wait()
	_ = os.RemoveAll(s.StaticDir)
}

func (s *RouterTestSuite) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestLandingPage() {
	rec := s.do(http.MethodGet, "/", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Dhanmondi Branch")
	s.Contains(rec.Body.String(), "2 shown")
	s.Contains(rec.Body.String(), `<option value="1" selected>Dhanmondi Branch</option>`)

	rec = s.do(http.MethodGet, "/?q=GULSHAN", "", "")
	s.Contains(rec.Body.String(), "1 shown")

	rec = s.do(http.MethodGet, "/?q=chittagong", "", "")
	s.Contains(rec.Body.String(), "No branches found.")
}

func (s *RouterTestSuite) TestServiceAndProfilePages() {
	rec := s.do(http.MethodGet, "/service", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Ready to Schedule a Pickup?")

	rec = s.do(http.MethodGet, "/profile", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "john@example.com")

	rec = s.do(http.MethodGet, "/profile/orders.xlsx", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), ".xlsx")
	s.True(strings.HasPrefix(rec.Body.String(), "PK"), "xlsx is a zip archive")
}

func (s *RouterTestSuite) TestBranchAPI() {
	rec := s.do(http.MethodGet, "/api/branches?search=gulshan", "", "")
	s.Equal(http.StatusOK, rec.Code)
	var list struct {
		Body struct {
			List []dto.BranchDTO `json:"list"`
		} `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Require().Len(list.Body.List, 1)
	s.Equal("Gulshan Branch", list.Body.List[0].Name)

	rec = s.do(http.MethodGet, "/api/branches/1", "", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/branches/99", "", "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/branches/1/call", "", "")
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("tel:+8801712345678", rec.Header().Get(echo.HeaderLocation))

	rec = s.do(http.MethodGet, "/api/branches/viewport?search=gulshan&selected=2", "", "")
	s.Equal(http.StatusOK, rec.Code)
	var view struct {
		Body dto.DirectoryViewDTO `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	s.Equal(1, view.Body.Shown)
	s.Equal(float64(14), view.Body.Viewport.Zoom)
}

func (s *RouterTestSuite) TestCreateOrderJSON() {
	rec := s.do(http.MethodPost, "/api/orders", echo.MIMEApplicationJSON, `{"name":"Rahim"}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "Please fill all required fields.")
	s.Contains(rec.Body.String(), `"serviceType"`)

	rec = s.do(http.MethodPost, "/api/orders", echo.MIMEApplicationJSON,
		`{"name":"Rahim","phone":"01711111111","address":"Road 11","branchId":2,"serviceType":"dry_clean","date":"2025-12-10","time":"10:30"}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "Your order has been submitted!")

	rec = s.do(http.MethodPost, "/api/orders", echo.MIMEApplicationJSON, `{"name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestSubmitHTMLForm() {
	form := url.Values{"name": {"Rahim"}, "phone": {"017"}, "address": {"Road 11"}, "branchId": {"1"}, "serviceType": {"wash"}}
	rec := s.do(http.MethodPost, "/orders", echo.MIMEApplicationForm, form.Encode())
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Your order has been submitted!")
	s.Contains(rec.Body.String(), `value="Rahim"`)

	form.Del("phone")
	rec = s.do(http.MethodPost, "/orders", echo.MIMEApplicationForm, form.Encode())
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "Please fill all required fields.")
}

func (s *RouterTestSuite) TestStaticAssets() {
	rec := s.do(http.MethodGet, "/static/site.css", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("body{}", rec.Body.String())

	rec = s.do(http.MethodGet, "/static/shirt.png", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("image/png", rec.Header().Get(echo.HeaderContentType))

	rec = s.do(http.MethodGet, "/static/app.js", "", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestLiveSession() {
	srv := httptest.NewServer(s.Echo)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/page", nil)
	s.Require().NoError(err)
	defer conn.Close()

	var ready struct {
		Type    string           `json:"type"`
		Payload dto.ReadyPayload `json:"payload"`
	}
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	s.Require().NoError(conn.ReadJSON(&ready))
	s.Equal(dto.EvtReady, ready.Type)
	s.NotEmpty(ready.Payload.SessionID)
	s.Equal(2, ready.Payload.View.Shown)

	s.Require().NoError(conn.WriteJSON(map[string]interface{}{"type": dto.MsgCall, "payload": map[string]string{"id": "2"}}))
	for {
		var env struct {
			Type    string                `json:"type"`
			Payload dto.CallTargetPayload `json:"payload"`
		}
		s.Require().NoError(conn.ReadJSON(&env))
		if env.Type != dto.EvtCall {
			continue
		}
		s.Equal("tel:+8801711111111", env.Payload.URI)
		break
	}

	rec := s.do(http.MethodGet, "/healthz", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"sessions":1`)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
