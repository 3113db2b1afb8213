// Package imghost uploads rendered chart images to a public image host
// so chat messages can embed them by URL.
package imghost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const uploadPath = "/3/image"

// Client uploads images through an imgur-compatible API.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
}

// NewClient creates an upload client. clientID authenticates anonymous uploads.
func NewClient(baseURL, clientID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		clientID:   clientID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type uploadRequest struct {
	Image string `json:"image"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

type uploadResponse struct {
	Data struct {
		Link string `json:"link"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Upload posts the image and returns its public URL.
func (c *Client) Upload(ctx context.Context, image []byte, title string) (string, error) {
	body, err := json.Marshal(uploadRequest{
		Image: base64.StdEncoding.EncodeToString(image),
		Type:  "base64",
		Title: title,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal upload payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Client-ID "+c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload failed with status code: %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if !out.Success || out.Data.Link == "" {
		return "", fmt.Errorf("upload rejected with status: %d", out.Status)
	}
	return out.Data.Link, nil
}
