// Package apiclient is the remote storage backend: a thin client of the
// /api/prompts endpoints, behind which a relational table lives. It is the
// second interchangeable implementation of promptstore.Store.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/linhao/promptmaster/internal/domain/prompt"
	"github.com/linhao/promptmaster/internal/port/promptstore"
)

type Client struct {
	base string
	http *http.Client
}

var _ promptstore.Store = (*Client)(nil)

// New builds a client for the given endpoint base URL ("" means the remote
// backend is not configured; every call then fails with ErrUnavailable).
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

type promptsResp struct {
	Success bool            `json:"success"`
	Prompts []prompt.Record `json:"prompts"`
	Prompt  *prompt.Record  `json:"prompt"`
	Error   string          `json:"error"`
}

type batchResp struct {
	Success  bool                      `json:"success"`
	Imported int                       `json:"imported"`
	Deleted  int                       `json:"deleted"`
	Errors   []promptstore.ImportError `json:"errors"`
	Error    string                    `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) (int, error) {
	if c.base == "" {
		return 0, promptstore.ErrUnavailable
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", promptstore.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) GetAll(ctx context.Context) ([]prompt.Record, error) {
	var out promptsResp
	status, err := c.do(ctx, http.MethodGet, "/api/prompts", nil, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || !out.Success {
		return nil, fmt.Errorf("listing prompts: %s (status %d)", out.Error, status)
	}
	if out.Prompts == nil {
		out.Prompts = []prompt.Record{}
	}
	return out.Prompts, nil
}

func (c *Client) GetByID(ctx context.Context, id prompt.ID) (prompt.Record, error) {
	var out promptsResp
	status, err := c.do(ctx, http.MethodGet, "/api/prompts/"+id.String(), nil, &out)
	if err != nil {
		return prompt.Record{}, err
	}
	if status == http.StatusNotFound {
		return prompt.Record{}, promptstore.ErrNotFound
	}
	if status != http.StatusOK || out.Prompt == nil {
		return prompt.Record{}, fmt.Errorf("fetching prompt %s: %s (status %d)", id, out.Error, status)
	}
	return *out.Prompt, nil
}

func (c *Client) Create(ctx context.Context, fields prompt.Fields, ownerID *int64) (prompt.Record, error) {
	body := createReq{Fields: fields, UserID: ownerID}
	var out promptsResp
	status, err := c.do(ctx, http.MethodPost, "/api/prompts", body, &out)
	if err != nil {
		return prompt.Record{}, err
	}
	if status != http.StatusOK && status != http.StatusCreated || out.Prompt == nil {
		return prompt.Record{}, fmt.Errorf("creating prompt: %s (status %d)", out.Error, status)
	}
	return *out.Prompt, nil
}

type createReq struct {
	prompt.Fields
	UserID *int64 `json:"userId,omitempty"`
}

func (c *Client) Update(ctx context.Context, id prompt.ID, patch prompt.Patch) (bool, error) {
	if patch.Empty() {
		return true, nil
	}
	var out promptsResp
	status, err := c.do(ctx, http.MethodPut, "/api/prompts/"+id.String(), patch, &out)
	if err != nil {
		return false, err
	}
	if status == http.StatusNotFound {
		return false, promptstore.ErrNotFound
	}
	if status != http.StatusOK || !out.Success {
		return false, fmt.Errorf("updating prompt %s: %s (status %d)", id, out.Error, status)
	}
	return true, nil
}

func (c *Client) DeleteMany(ctx context.Context, ids []prompt.ID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var out batchResp
	status, err := c.do(ctx, http.MethodDelete, "/api/prompts/batch", map[string]any{"ids": ids}, &out)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK || !out.Success {
		return 0, fmt.Errorf("deleting prompts: %s (status %d)", out.Error, status)
	}
	return out.Deleted, nil
}

func (c *Client) Import(ctx context.Context, items []prompt.Fields, ownerID *int64) (int, []promptstore.ImportError, error) {
	body := map[string]any{"prompts": items}
	if ownerID != nil {
		body["userId"] = *ownerID
	}
	var out batchResp
	status, err := c.do(ctx, http.MethodPost, "/api/prompts/batch", body, &out)
	if err != nil {
		return 0, nil, err
	}
	if status != http.StatusOK || !out.Success {
		return 0, nil, fmt.Errorf("importing prompts: %s (status %d)", out.Error, status)
	}
	return out.Imported, out.Errors, nil
}

// Initialize bootstraps an empty remote table from the seed list. Seed
// records keep their isCustom=false flag, unlike user imports.
func (c *Client) Initialize(ctx context.Context, seed []prompt.Record) error {
	fields := make([]prompt.Fields, len(seed))
	for i, r := range seed {
		fields[i] = prompt.Fields{
			Title:      r.Title,
			Desc:       r.Desc,
			Prompt:     r.Prompt,
			Category:   r.Category,
			Complexity: r.Complexity,
			Type:       r.Type,
			Icon:       r.Icon,
			Image:      r.Image,
			IsCustom:   r.IsCustom,
		}
	}

	var out batchResp
	status, err := c.do(ctx, http.MethodPost, "/api/prompts/batch", map[string]any{"prompts": fields, "seed": true}, &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK || !out.Success {
		return fmt.Errorf("seeding remote store: %s (status %d)", out.Error, status)
	}
	return nil
}
