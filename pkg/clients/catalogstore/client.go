package catalogstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yassirrachad97/DepotSmart/internal/config"
	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

// ErrNotFound is returned when a single record addressed by id does not exist.
var ErrNotFound = errors.New("catalog store: record not found")

// ErrTransport wraps every network or HTTP-level failure talking to the store.
var ErrTransport = errors.New("catalog store: transport failure")

// APIError describes a non-2xx answer from the store.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog store %s %s: status=%d body=%s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Unwrap lets callers match any APIError against ErrTransport.
func (e *APIError) Unwrap() error { return ErrTransport }

// Client exposes the catalog store operations used by the application.
type Client interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id models.ID) (*models.Product, error)
	FindProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	PatchProduct(ctx context.Context, id models.ID, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id models.ID) error
	FindWarehousemanBySecretKey(ctx context.Context, secretKey string) (*models.Warehouseman, error)
	GetWarehouseman(ctx context.Context, id models.ID) (*models.Warehouseman, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a catalog store client from configuration.
func NewClient(cfg config.CatalogConfig) *APIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &APIClient{httpClient: restyClient}
}

// ListProducts fetches the full product collection.
func (c *APIClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", c.httpClient.R().SetResult(&products)); err != nil {
		return nil, err
	}

	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, fmt.Errorf("product %s: %w", products[i].ID, err)
		}
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *APIClient) GetProduct(ctx context.Context, id models.ID) (*models.Product, error) {
	product := new(models.Product)
	req := c.httpClient.R().SetPathParam("id", id.String()).SetResult(product)
	if err := c.do(ctx, http.MethodGet, "/products/{id}", req); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("product %s: %w", id, err)
	}
	return product, nil
}

// FindProductByBarcode returns the first product carrying the barcode, or nil
// when none does.
func (c *APIClient) FindProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	var matches []models.Product
	req := c.httpClient.R().SetQueryParam("barcode", barcode).SetResult(&matches)
	if err := c.do(ctx, http.MethodGet, "/products", req); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	first := matches[0]
	if err := first.Validate(); err != nil {
		return nil, fmt.Errorf("product %s: %w", first.ID, err)
	}
	return &first, nil
}

// CreateProduct posts a new product; the store assigns the id.
func (c *APIClient) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	product.ID = models.ID{}
	if product.EditedBy == nil {
		product.EditedBy = []models.EditHistory{}
	}

	created := new(models.Product)
	req := c.httpClient.R().SetBody(product).SetResult(created)
	if err := c.do(ctx, http.MethodPost, "/products", req); err != nil {
		return nil, err
	}
	if err := created.Validate(); err != nil {
		return nil, fmt.Errorf("created product: %w", err)
	}
	return created, nil
}

// PatchProduct sends a partial update. The store replaces arrays such as
// stocks wholesale.
func (c *APIClient) PatchProduct(ctx context.Context, id models.ID, patch models.ProductPatch) (*models.Product, error) {
	updated := new(models.Product)
	req := c.httpClient.R().SetPathParam("id", id.String()).SetBody(patch).SetResult(updated)
	if err := c.do(ctx, http.MethodPatch, "/products/{id}", req); err != nil {
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("patched product %s: %w", id, err)
	}
	return updated, nil
}

// DeleteProduct removes a product.
func (c *APIClient) DeleteProduct(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/products/{id}", c.httpClient.R().SetPathParam("id", id.String()))
}

// FindWarehousemanBySecretKey returns the first identity owning the key, or nil
// when the key is unknown.
func (c *APIClient) FindWarehousemanBySecretKey(ctx context.Context, secretKey string) (*models.Warehouseman, error) {
	var matches []models.Warehouseman
	req := c.httpClient.R().SetQueryParam("secretKey", secretKey).SetResult(&matches)
	if err := c.do(ctx, http.MethodGet, "/warehousemans", req); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// GetWarehouseman fetches one identity by id.
func (c *APIClient) GetWarehouseman(ctx context.Context, id models.ID) (*models.Warehouseman, error) {
	result := new(models.Warehouseman)
	req := c.httpClient.R().SetPathParam("id", id.String()).SetResult(result)
	if err := c.do(ctx, http.MethodGet, "/warehousemans/{id}", req); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, req *resty.Request) error {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}

	if resp.StatusCode() == http.StatusNotFound && strings.Contains(path, "{id}") {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}

	if resp.IsError() || resp.StatusCode() >= http.StatusBadRequest {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}

	return nil
}
