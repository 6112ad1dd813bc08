package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"roomlift-backend/internal/options"
)

// Design is the terminal outcome of one generation attempt. Generate always
// produces one: when the remote path fails the image is substituted and
// IsFallback is set, so the caller never dead-ends on a blank result.
type Design struct {
	ImageURL       string   `json:"image_url"`
	IsFallback     bool     `json:"is_fallback"`
	FallbackReason string   `json:"fallback_reason,omitempty"`
	Suggestions    []string `json:"suggestions"`
}

type Request struct {
	Style    options.Style
	RoomType options.RoomType
	Budget   options.Budget

	// Optional room dimensions in meters, included in the prompt when both
	// are present.
	WidthM  float64
	LengthM float64
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	ImageURL string `json:"image_url"`
	Error    *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	FallbackImageURL string `json:"fallback_image_url"`
}

type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		// The transport timeout sits above the race timeout so a late
		// response can still be drained and discarded.
		httpClient: &http.Client{
			Timeout: timeout + 10*time.Second,
		},
	}
}

// BuildPrompt concatenates the selections into the natural-language prompt the
// remote service expects.
func (c *Client) BuildPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A %s style %s interior design", req.Style.Prompt(), req.RoomType.Prompt())
	if req.WidthM > 0 && req.LengthM > 0 {
		fmt.Fprintf(&b, ", room dimensions %.1fm by %.1fm", req.WidthM, req.LengthM)
	}
	fmt.Fprintf(&b, ", designed for %s", req.Budget.Prompt())
	b.WriteString(", photorealistic, interior photography, high detail")
	return b.String()
}

// Generate issues one generation request and races it against the configured
// timeout. It classifies the response into success, degraded success, or local
// fallback, and always resolves to a Design.
func (c *Client) Generate(ctx context.Context, req Request) *Design {
	suggestions := Suggestions(req.Style, req.Budget)

	type outcome struct {
		design *Design
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		d, err := c.callRemote(ctx, c.BuildPrompt(req))
		done <- outcome{design: d, err: err}
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			return c.stockFallback(req.RoomType, suggestions, out.err.Error())
		}
		out.design.Suggestions = suggestions
		return out.design
	case <-timer.C:
		// Stop waiting; the in-flight call keeps running and its late
		// response is discarded by the buffered channel.
		return c.stockFallback(req.RoomType, suggestions, "generation timed out")
	case <-ctx.Done():
		return c.stockFallback(req.RoomType, suggestions, "generation cancelled")
	}
}

func (c *Client) callRemote(ctx context.Context, prompt string) (*Design, error) {
	body, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.baseURL, "/") + "/designs/generate"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(respBody))
	}

	switch {
	case resp.StatusCode == http.StatusOK && result.ImageURL != "":
		return &Design{ImageURL: result.ImageURL}, nil
	case result.Error != nil && result.FallbackImageURL != "":
		// The service explicitly degraded (capacity or billing limit) and
		// supplied a substitute image of its own.
		return &Design{
			ImageURL:       result.FallbackImageURL,
			IsFallback:     true,
			FallbackReason: result.Error.Message,
		}, nil
	default:
		return nil, fmt.Errorf("no usable image in response: status %d, body: %s", resp.StatusCode, string(respBody))
	}
}

func (c *Client) stockFallback(room options.RoomType, suggestions []string, reason string) *Design {
	return &Design{
		ImageURL:       StockImage(room),
		IsFallback:     true,
		FallbackReason: reason,
		Suggestions:    suggestions,
	}
}
