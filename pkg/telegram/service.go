package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultAPIBase = "https://api.telegram.org"

var ErrNoToken = errors.New("telegram bot token is not set")

type ServiceInterface interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageEx(ctx context.Context, chatID int64, text string, options ...MessageOption) error
}

type Service struct {
	botToken   string
	apiBase    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Service)

// WithAPIBase points the client at another Bot API host.
func WithAPIBase(base string) Option {
	return func(s *Service) { s.apiBase = strings.TrimRight(base, "/") }
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.httpClient = c }
}

func NewService(botToken string, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		botToken:   botToken,
		apiBase:    defaultAPIBase,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

type MessageOption func(*sendMessageRequest)

func WithMarkdownV2() MessageOption {
	return func(req *sendMessageRequest) { req.ParseMode = "MarkdownV2" }
}

func WithHTML() MessageOption {
	return func(req *sendMessageRequest) { req.ParseMode = "HTML" }
}

func WithoutPreview() MessageOption {
	return func(req *sendMessageRequest) { req.DisableWebPagePreview = true }
}

// SendMessage sends plain text, escaped for MarkdownV2.
func (s *Service) SendMessage(ctx context.Context, chatID int64, text string) error {
	return s.SendMessageEx(ctx, chatID, EscapeTextForMarkdownV2(text), WithMarkdownV2())
}

func (s *Service) SendMessageEx(ctx context.Context, chatID int64, text string, options ...MessageOption) error {
	payload := &sendMessageRequest{ChatID: chatID, Text: text}
	for _, opt := range options {
		opt(payload)
	}
	return s.sendRequest(ctx, "sendMessage", payload)
}

func (s *Service) sendRequest(ctx context.Context, methodName string, payload interface{}) error {
	if s.botToken == "" {
		return ErrNoToken
	}

	apiURL := fmt.Sprintf("%s/bot%s/%s", s.apiBase, s.botToken, methodName)

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode telegram request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	s.logger.Debug("telegram call", zap.String("method", methodName), zap.Int("status", resp.StatusCode), zap.ByteString("response", body))

	// errors come back in the body, sometimes with a 200
	var telegramResp struct {
		OK          bool   `json:"ok"`
		Description string `json:"description,omitempty"`
		ErrorCode   int    `json:"error_code,omitempty"`
	}
	if err := json.Unmarshal(body, &telegramResp); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !telegramResp.OK {
		return fmt.Errorf("telegram %s failed: code %d: %s", methodName, telegramResp.ErrorCode, telegramResp.Description)
	}
	return nil
}

func EscapeTextForMarkdownV2(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
		"(", "\\(", ")", "\\)", "\\", "\\\\",
		"~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#", "+", "\\+",
		"-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}
