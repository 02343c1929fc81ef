// Package catalog is a thin client for the remote product collection. No
// retries, no caching: failures are classified, logged and returned to the
// caller verbatim.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eshoplabs/go-shop-state/internal/model"
)

type FailureClass string

const (
	ClassUnreachable FailureClass = "unreachable"
	ClassNotFound    FailureClass = "not_found"
	ClassServer      FailureClass = "server"
	ClassOther       FailureClass = "other"
)

// RequestError carries the failed operation, target and classification so
// the caller can map it to a user-facing message.
type RequestError struct {
	Op     string
	URL    string
	Status int
	Class  FailureClass
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("catalog %s %s: status %d (%s)", e.Op, e.URL, e.Status, e.Class)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Draft is a product without an id; the server assigns one on create.
type Draft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// List fetches all products.
func (c *Client) List(ctx context.Context) ([]model.Product, error) {
	url := c.baseURL + "/api/products"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.fail("list", url, 0, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail("list", url, 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.fail("list", url, resp.StatusCode, nil)
	}
	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, c.fail("list", url, resp.StatusCode, err)
	}
	return products, nil
}

// Create posts a draft; the returned product carries the server-assigned id.
func (c *Client) Create(ctx context.Context, draft Draft) (*model.Product, error) {
	url := c.baseURL + "/api/products"
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, c.fail("create", url, 0, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, c.fail("create", url, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail("create", url, 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.fail("create", url, resp.StatusCode, nil)
	}
	var product model.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, c.fail("create", url, resp.StatusCode, err)
	}
	return &product, nil
}

// Delete removes a product by id; the server answers with a bare boolean.
func (c *Client) Delete(ctx context.Context, id int) (bool, error) {
	url := fmt.Sprintf("%s/api/products/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return false, c.fail("delete", url, 0, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, c.fail("delete", url, 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, c.fail("delete", url, resp.StatusCode, nil)
	}
	var deleted bool
	if err := json.NewDecoder(resp.Body).Decode(&deleted); err != nil {
		return false, c.fail("delete", url, resp.StatusCode, err)
	}
	return deleted, nil
}

func (c *Client) fail(op, url string, status int, err error) error {
	reqErr := &RequestError{Op: op, URL: url, Status: status, Class: classify(status, err), Err: err}
	c.log.Error("catalog request failed",
		"op", op,
		"url", url,
		"status", status,
		"class", string(reqErr.Class),
		"error", err,
	)
	return reqErr
}

func classify(status int, err error) FailureClass {
	switch {
	case status == 0 && err != nil:
		return ClassUnreachable
	case status == http.StatusNotFound:
		return ClassNotFound
	case status >= 500:
		return ClassServer
	default:
		return ClassOther
	}
}
