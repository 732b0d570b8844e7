// Package semantic is the client for the optional remote semantic scorer
// sidecar. Availability is modeled as presence, not as errors: any
// transport, timeout, status or decode failure collapses uniformly to
// "absent", and the caller falls back to local scoring. A single attempt is
// made per request, with no retries.
package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Score is the sidecar's scoring response.
type Score struct {
	Score       float64  `json:"score"`
	Base        float64  `json:"base"`
	Adjustment  int      `json:"adjustment"`
	Explanation []string `json:"explanation"`
}

type scoreRequest struct {
	CVText  string `json:"cv_text"`
	JobText string `json:"job_text"`
}

type extractResponse struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

// Client talks to the sidecar over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient builds a client for the sidecar at baseURL. The timeout bounds
// the whole request; callers may cancel earlier via context.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// TryScore asks the sidecar to score the pair. The second return value is
// false whenever the sidecar could not produce a usable score, for any
// reason; failures are logged at debug level and never surfaced.
func (c *Client) TryScore(ctx context.Context, cvText, jobText string) (*Score, bool) {
	body, err := json.Marshal(scoreRequest{CVText: cvText, JobText: jobText})
	if err != nil {
		return nil, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("semantic scorer unavailable", zap.Error(err))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("semantic scorer non-success", zap.Int("status", resp.StatusCode))
		return nil, false
	}

	var score Score
	if err := json.NewDecoder(resp.Body).Decode(&score); err != nil {
		c.log.Debug("semantic scorer response unreadable", zap.Error(err))
		return nil, false
	}
	return &score, true
}

// TryExtract asks the sidecar to extract plain text from an uploaded file.
// Same availability contract as TryScore.
func (c *Client) TryExtract(ctx context.Context, filename, contentType string, data []byte) (string, bool) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", false
	}
	if _, err := io.Copy(part, bytes.NewReader(data)); err != nil {
		return "", false
	}
	if err := writer.Close(); err != nil {
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", &buf)
	if err != nil {
		return "", false
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("extractor sidecar unavailable", zap.Error(err))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("extractor sidecar non-success", zap.Int("status", resp.StatusCode))
		return "", false
	}

	var out extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", false
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", false
	}
	return out.Text, true
}
