package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akels/taskdeck/internal/common"
)

// User is the account representation returned by the server.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Task mirrors the server's task representation.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// Client is a thin REST client for the server. It keeps the access token
// obtained at login and attaches it to every owner-scoped call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil. Non-2xx responses are turned into
// errors carrying the server's error message.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+" "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server: %s", apiErr.Error)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Register(ctx context.Context, name, email string, password []byte) error {
	body := map[string]string{"name": name, "email": email, "password": string(password)}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Login authenticates and stores the returned access token on the client.
func (c *Client) Login(ctx context.Context, email string, password []byte) error {
	body := map[string]string{"email": email, "password": string(password)}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.AccessToken
	return nil
}

func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateTask(ctx context.Context, title, description string) (*Task, error) {
	body := map[string]any{"title": title}
	if description != "" {
		body["description"] = description
	}
	var t Task
	if err := c.doJSON(ctx, http.MethodPost, "/me/tasks", body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var ts []Task
	if err := c.doJSON(ctx, http.MethodGet, "/me/tasks", nil, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (c *Client) GetTask(ctx context.Context, id int64) (*Task, error) {
	var t Task
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/me/tasks/%d", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CompleteTask marks a task done without touching its other fields.
func (c *Client) CompleteTask(ctx context.Context, id int64) (*Task, error) {
	body := map[string]any{"completed": true}
	var t Task
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/me/tasks/%d", id), body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/me/tasks/%d", id), nil, nil)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/ping", nil, nil)
}
