// Package upscale is a client for the crisp-upscale HTTP service: one
// multipart POST per image, bearer-token authorized, returning either a
// download URL or the result inline as base64.
package upscale

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultAPIURL  = "https://external.api.recraft.ai/v1/images/crispUpscale"
	DefaultTimeout = 2 * time.Minute

	// Mode is the upscale quality preset sent with every request.
	Mode = "upscale16mp"
)

// ErrMissingToken aborts a batch before any network call is made.
var ErrMissingToken = errors.New("upscale API token is not set")

// APIError is a non-2xx response from the upscale service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upscale service: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("upscale service returned status %d", e.StatusCode)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// CheckToken reports ErrMissingToken when the client has no bearer token.
func (c *Client) CheckToken() error {
	if c.token == "" {
		return ErrMissingToken
	}
	return nil
}

type imagePayload struct {
	URL     string `json:"url"`
	B64JSON string `json:"b64_json"`
}

type upscaleResponse struct {
	Image imagePayload `json:"image"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// Upscale sends the image at path to the service and returns the upscaled
// image bytes. The request is aborted when ctx is canceled.
func (c *Client) Upscale(ctx context.Context, path string) ([]byte, error) {
	if err := c.CheckToken(); err != nil {
		return nil, err
	}

	body, contentType, err := buildForm(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upscale request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var decoded upscaleResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode upscale response: %w", err)
	}

	switch {
	case decoded.Image.URL != "":
		return c.fetch(ctx, decoded.Image.URL)
	case decoded.Image.B64JSON != "":
		data, err := base64.StdEncoding.DecodeString(decoded.Image.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("decode inline image: %w", err)
		}
		return data, nil
	default:
		return nil, errors.New("upscale response contained no image payload")
	}
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download upscaled image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "image download failed"}
	}

	return io.ReadAll(resp.Body)
}

func buildForm(path string) (io.Reader, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("response_format", "url"); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("upscale", Mode); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var decoded errorResponse
	message := ""
	if err := json.Unmarshal(raw, &decoded); err == nil {
		switch {
		case decoded.Error != "":
			message = decoded.Error
		case decoded.Detail != "":
			message = decoded.Detail
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
