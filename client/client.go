// Package client is a typed Go client for the MoneyMap API, intended
// for integration tests and small automation tools. It speaks the same
// response envelope the server emits and keeps the bearer token from
// the last successful login.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"moneymap/models"
	"moneymap/service"
)

// APIError is a non-2xx response from the server, carrying the
// envelope code and message.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("moneymap: %d %s", e.StatusCode, e.Message)
}

// Client talks to a MoneyMap server.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs a bearer token obtained out of band.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token, empty until login.
func (c *Client) Token() string {
	return c.token
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// RegisterParams are the fields required to create an account.
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns the created user.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type loginData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates and stores the returned bearer token for
// subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var data loginData
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &data); err != nil {
		return nil, err
	}
	c.token = data.Token
	return &data.User, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExpenseParams are the fields for creating an expense.
type ExpenseParams struct {
	Amount   models.Money `json:"amount"`
	Category string       `json:"category"`
	Note     string       `json:"note,omitempty"`
	Date     models.Date  `json:"date"`
}

// ExpensePatch updates a subset of an expense's fields; nil fields are
// left unchanged.
type ExpensePatch struct {
	Amount   *models.Money `json:"amount,omitempty"`
	Category *string       `json:"category,omitempty"`
	Note     *string       `json:"note,omitempty"`
	Date     *models.Date  `json:"date,omitempty"`
}

// CreateExpense records a new expense for the authenticated user.
func (c *Client) CreateExpense(ctx context.Context, params ExpenseParams) (*models.Expense, error) {
	var expense models.Expense
	if err := c.do(ctx, http.MethodPost, "/api/v1/expenses", params, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListExpenses returns all of the authenticated user's expenses,
// most recent date first.
func (c *Client) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := c.do(ctx, http.MethodGet, "/api/v1/expenses", nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetExpense fetches one expense by id.
func (c *Client) GetExpense(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/expenses/%d", id), nil, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// UpdateExpense applies a partial update and returns the new state.
func (c *Client) UpdateExpense(ctx context.Context, id uint, patch ExpensePatch) (*models.Expense, error) {
	var expense models.Expense
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/expenses/%d", id), patch, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

type deleteData struct {
	Deleted models.Expense `json:"deleted"`
}

// DeleteExpense deletes an expense and returns the deleted record.
func (c *Client) DeleteExpense(ctx context.Context, id uint) (*models.Expense, error) {
	var data deleteData
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/expenses/%d", id), nil, &data); err != nil {
		return nil, err
	}
	return &data.Deleted, nil
}

// GetSummary returns the caller's spending summary.
func (c *Client) GetSummary(ctx context.Context) (*service.Summary, error) {
	var summary service.Summary
	if err := c.do(ctx, http.MethodGet, "/api/v1/expenses/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetCategories returns the suggested category names.
func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
