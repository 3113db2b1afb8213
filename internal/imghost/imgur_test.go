package imghost

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

func TestUploadReturnsLink(t *testing.T) {
	var got map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"link":"https://i.example.com/abc.png"},"success":true,"status":200}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "client-123", time.Second)
	link, err := client.Upload(context.Background(), []byte("hello"), "roi trend")
	require.NoError(t, err)
	assert.Equal(t, "https://i.example.com/abc.png", link)
	assert.Equal(t, "Client-ID client-123", auth)
	assert.Equal(t, "aGVsbG8=", got["image"])
	assert.Equal(t, "base64", got["type"])
}

func TestUploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{},"success":false,"status":403}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad-id", time.Second)
	_, err := client.Upload(context.Background(), []byte("hello"), "roi trend")
	assert.Error(t, err)
}
