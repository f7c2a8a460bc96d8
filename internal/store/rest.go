package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RestClient talks to a hosted backend exposing a PostgREST-style row API
// plus an object storage endpoint. One instance per process.
type RestClient struct {
	baseURL string
	anonKey string
	token   string // access token from login; anon key is used when empty
	http    *http.Client
}

// NewRestClient creates a client for the hosted backend. token may be
// empty for anonymous access.
func NewRestClient(baseURL, anonKey, token string) *RestClient {
	return &RestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *RestClient) ListRows(ctx context.Context, collection string, out any) error {
	return c.rest(ctx, http.MethodGet, collection+"?select=*", nil, "", out)
}

func (c *RestClient) InsertRow(ctx context.Context, collection string, record any, out any) error {
	var rows []json.RawMessage
	if err := c.rest(ctx, http.MethodPost, collection, record, "return=representation", &rows); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(rows) == 0 {
		return fmt.Errorf("insert into %s: no row returned", collection)
	}
	return json.Unmarshal(rows[0], out)
}

func (c *RestClient) UpdateRow(ctx context.Context, collection, id string, patch map[string]any) error {
	return c.rest(ctx, http.MethodPatch, collection+"?id=eq."+url.QueryEscape(id), patch, "", nil)
}

func (c *RestClient) UpsertRow(ctx context.Context, collection string, record any) error {
	return c.rest(ctx, http.MethodPost, collection, record, "resolution=merge-duplicates", nil)
}

func (c *RestClient) DeleteRow(ctx context.Context, collection, id string) error {
	return c.rest(ctx, http.MethodDelete, collection+"?id=eq."+url.QueryEscape(id), nil, "", nil)
}

func (c *RestClient) GetSingleton(ctx context.Context, collection, id string, out any) error {
	var rows []json.RawMessage
	query := collection + "?select=*&id=eq." + url.QueryEscape(id) + "&limit=1"
	if err := c.rest(ctx, http.MethodGet, query, nil, "", &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return json.Unmarshal(rows[0], out)
}

// UploadFile stores data under bucket/filename and returns the public URL
func (c *RestClient) UploadFile(ctx context.Context, bucket, filename string, data []byte, contentType string) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	c.setAuth(req)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", bucket, filename, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("upload %s/%s: %s: %s", bucket, filename, resp.Status, strings.TrimSpace(string(body)))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, filename), nil
}

// rest performs one row-API request. prefer is passed through as the
// Prefer header when non-empty. out may be nil for write-only calls.
func (c *RestClient) rest(ctx context.Context, method, query string, body any, prefer string, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, query)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	c.setAuth(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: %s: %s", method, query, resp.Status, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *RestClient) setAuth(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	token := c.token
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
