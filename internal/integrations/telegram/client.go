package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultBaseURL адрес Telegram Bot API
const defaultBaseURL = "https://api.telegram.org"

// maxResponseBytes предел чтения тела ответа Bot API
const maxResponseBytes = 64 * 1024

// Client клиент Telegram Bot API. Используется только как односторонний
// канал уведомлений (sendMessage)
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента Bot API
func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithBaseURL создает клиент с явным адресом API (для тестов)
func NewClientWithBaseURL(baseURL, token string, timeout time.Duration) *Client {
	c := NewClient(token, timeout)
	c.baseURL = baseURL
	return c
}

// SendMessage отправляет текстовое сообщение в чат
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	body, err := json.Marshal(sendMessageRequest{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to read response (status %d): %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("%w: failed to decode response (status %d): %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if !apiResp.OK {
		return fmt.Errorf("%w: chat_id=%s, code=%d, description=%s",
			ErrSendMessage, chatID, apiResp.ErrorCode, apiResp.Description)
	}

	return nil
}
