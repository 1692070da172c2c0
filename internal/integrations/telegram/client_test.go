package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClientWithBaseURL(srv.URL, "test-token", 5*time.Second), srv
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotReq sendMessageRequest

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})
	defer srv.Close()

	err := client.SendMessage(context.Background(), "12345", "salom")
	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotReq.ChatID)
	assert.Equal(t, "salom", gotReq.Text)
}

func TestSendMessage_APIError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})
	defer srv.Close()

	err := client.SendMessage(context.Background(), "12345", "salom")
	require.ErrorIs(t, err, ErrSendMessage)
	assert.Contains(t, err.Error(), "chat not found")
	assert.Contains(t, err.Error(), "code=400")
}

func TestSendMessage_MalformedResponse(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})
	defer srv.Close()

	err := client.SendMessage(context.Background(), "12345", "salom")
	require.ErrorIs(t, err, ErrInvalidResponse)

	// В тексте ошибки виден статус и сырое тело ответа
	assert.Contains(t, err.Error(), "status 502")
	assert.Contains(t, err.Error(), "<html>bad gateway</html>")
}
