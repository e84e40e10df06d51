// Package api is the REST client dashctl uses to talk to the server.
package api

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

// Error is a non-2xx response from the server.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client calls the dashboard REST API. Set a token with SetToken after
// login; requests then carry it as a bearer credential.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// New creates a client for a server base URL such as
// "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs (or clears) the bearer token.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
	}
	return apiErr
}

// ---------- auth ----------

func (c *Client) Register(ctx context.Context, username, password, role string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil,
		map[string]string{"username": username, "password": password, "role": role}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil,
		map[string]string{"username": username, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------- entries ----------

func (c *Client) ListEntries(ctx context.Context, filter EntryFilter) ([]Entry, error) {
	q := url.Values{}
	if filter.Unit != "" {
		q.Set("unit", filter.Unit)
	}
	if filter.No != "" {
		q.Set("no", filter.No)
	}
	if filter.From != "" {
		q.Set("from", filter.From)
	}
	if filter.To != "" {
		q.Set("to", filter.To)
	}

	var out []Entry
	if err := c.do(ctx, http.MethodGet, "/api/entries", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEntry(ctx context.Context, entry Entry) (*Entry, error) {
	var out Entry
	if err := c.do(ctx, http.MethodPost, "/api/entries", nil, entry, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEntry(ctx context.Context, id uint, entry Entry) (*Entry, error) {
	var out Entry
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/entries/%d", id), nil, entry, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEntry(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/entries/%d", id), nil, nil, nil)
}

// ExportEntriesCSV streams the server's CSV export into w.
func (c *Client) ExportEntriesCSV(ctx context.Context, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/entries/export/csv", nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

// ---------- units ----------

func (c *Client) ListUnits(ctx context.Context) ([]Unit, error) {
	var out []Unit
	if err := c.do(ctx, http.MethodGet, "/api/units", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUnit(ctx context.Context, name string) (*Unit, error) {
	var out Unit
	if err := c.do(ctx, http.MethodGet, "/api/units/"+url.PathEscape(name), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUnit(ctx context.Context, name, address, contact string) (*Unit, error) {
	var out Unit
	err := c.do(ctx, http.MethodPost, "/api/units", nil,
		map[string]string{"name": name, "address": address, "contact": contact}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUnit(ctx context.Context, id uint, name, address, contact string) (*Unit, error) {
	var out Unit
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/units/%d", id), nil,
		map[string]string{"name": name, "address": address, "contact": contact}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUnit(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/units/%d", id), nil, nil, nil)
}

// ---------- todos ----------

func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	var out []Todo
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTodo(ctx context.Context, text string) (*Todo, error) {
	var out Todo
	if err := c.do(ctx, http.MethodPost, "/api/todos", nil, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleTodo(ctx context.Context, id uint) (*Todo, error) {
	var out Todo
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/todos/%d/toggle", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, nil, nil)
}

// ---------- schedule ----------

func (c *Client) ListSchedule(ctx context.Context) ([]ScheduleEvent, error) {
	var out []ScheduleEvent
	if err := c.do(ctx, http.MethodGet, "/api/schedule", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateScheduleEvent(ctx context.Context, date, text string) (*ScheduleEvent, error) {
	var out ScheduleEvent
	err := c.do(ctx, http.MethodPost, "/api/schedule", nil,
		map[string]string{"date": date, "text": text}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------- logs ----------

func (c *Client) ListLogs(ctx context.Context) ([]LogEntry, error) {
	var out []LogEntry
	if err := c.do(ctx, http.MethodGet, "/api/logs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
