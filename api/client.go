// Package api is the HTTP client for the remote Gourmet Slice service. The
// web app holds no state of its own beyond the session; every screen
// re-derives truth from these calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"gourmet-slice-web/models"
)

// APIError is a non-2xx response from the remote API. Msg carries the
// server's `msg` field and may be empty when the body had no usable shape —
// callers must not assume it is set.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Message extracts the server-reported msg from err, if err is an APIError.
// The second return distinguishes "server answered" from transport failure.
func Message(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Msg, true
	}
	return "", false
}

// Client issues requests against a fixed remote origin.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ProductForm is the multipart payload for product create/update. Image is
// nil when the admin left the file field empty; the server then keeps the
// existing image on update.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	Category    string
	Image       *multipart.FileHeader
}

// Login authenticates a customer.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.postJSON(ctx, "/login", creds, &out)
	return out, err
}

// AdminLogin authenticates an admin.
func (c *Client) AdminLogin(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.postJSON(ctx, "/admin-login", creds, &out)
	return out, err
}

// SignUp registers a new customer account.
func (c *Client) SignUp(ctx context.Context, req models.SignUpRequest) (models.APIMessage, error) {
	var out models.APIMessage
	err := c.postJSON(ctx, "/signup", req, &out)
	return out, err
}

// Products lists the full catalog. Deliberately unauthenticated; the catalog
// is public.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.getJSON(ctx, "/api/products", "", &out)
	return out, err
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (models.APIMessage, error) {
	return c.submitProduct(ctx, http.MethodPost, "/api/products", form)
}

// UpdateProduct replaces the product with the given id.
func (c *Client) UpdateProduct(ctx context.Context, id string, form ProductForm) (models.APIMessage, error) {
	return c.submitProduct(ctx, http.MethodPut, "/api/products/"+id, form)
}

// DeleteProduct removes a product from the catalog.
func (c *Client) DeleteProduct(ctx context.Context, id string) (models.APIMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/api/products/"+id, nil)
	if err != nil {
		return models.APIMessage{}, err
	}
	var out models.APIMessage
	err = c.do(req, &out)
	return out, err
}

// Users lists all registered users. Requires the bearer token.
func (c *Client) Users(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	err := c.getJSON(ctx, "/api/users", token, &out)
	return out, err
}

// AllOrders lists every order across all users. Requires the bearer token.
func (c *Client) AllOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	err := c.getJSON(ctx, "/api/orders/all", token, &out)
	return out, err
}

func (c *Client) submitProduct(ctx context.Context, method, path string, form ProductForm) (models.APIMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":        form.Name,
		"description": form.Description,
		"price":       form.Price,
		"category":    form.Category,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return models.APIMessage{}, err
		}
	}
	if form.Image != nil {
		src, err := form.Image.Open()
		if err != nil {
			return models.APIMessage{}, err
		}
		defer src.Close()
		part, err := w.CreateFormFile("image", form.Image.Filename)
		if err != nil {
			return models.APIMessage{}, err
		}
		if _, err := io.Copy(part, src); err != nil {
			return models.APIMessage{}, err
		}
	}
	if err := w.Close(); err != nil {
		return models.APIMessage{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return models.APIMessage{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out models.APIMessage
	err = c.do(req, &out)
	return out, err
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The error body usually carries {msg}, but not always; keep Msg
		// empty rather than failing on an unexpected shape.
		var payload models.APIMessage
		_ = json.Unmarshal(body, &payload)
		return &APIError{StatusCode: resp.StatusCode, Msg: payload.Msg}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
