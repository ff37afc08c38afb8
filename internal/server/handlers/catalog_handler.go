package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
	"github.com/yassirrachad97/DepotSmart/internal/service/inventory"
)

// InventoryService is what the catalog endpoints need from the inventory service.
type InventoryService interface {
	ListProducts(ctx context.Context, q models.ProductQuery) (inventory.ProductListing, error)
	GetProduct(ctx context.Context, id models.ID) (*models.Product, error)
	LookupBarcode(ctx context.Context, barcode string) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	CreateScannedProduct(ctx context.Context, form inventory.ScanForm) (*models.Product, error)
	UpdateStockQuantity(ctx context.Context, productID, stockID models.ID, quantity int) (*models.Product, error)
	DeleteProduct(ctx context.Context, id models.ID) error
	Warehouses() []models.Warehouse
}

// BarcodeLookupResponse carries the scanned product, or null when the barcode is unknown.
type BarcodeLookupResponse struct {
	Product    *models.Product    `json:"product"`
	StockLevel *models.StockLevel `json:"stockLevel"`
}

type stockQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// CatalogHandler serves product listing, lookup and mutation endpoints.
type CatalogHandler struct {
	svc    InventoryService
	logger *zap.Logger
}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler(svc InventoryService, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{svc: svc, logger: logger}
}

// ListProducts answers GET /products with search, filter and sort applied.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	sortBy, err := models.ParseSortCriteria(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := models.ParseSortOrder(c.Query("order"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := models.ProductQuery{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Supplier: c.Query("supplier"),
		SortBy:   sortBy,
		Order:    order,
	}

	listing, err := h.svc.ListProducts(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, "failed listing products", err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		respondError(c, h.logger, "failed fetching product", err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// LookupBarcode answers 200 with a null product when nothing carries the barcode,
// so the scanner can offer the creation form.
func (h *CatalogHandler) LookupBarcode(c *gin.Context) {
	product, err := h.svc.LookupBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		respondError(c, h.logger, "failed looking up barcode", err)
		return
	}

	resp := BarcodeLookupResponse{Product: product}
	if product != nil {
		level := models.LevelFor(product.TotalQuantity())
		resp.StockLevel = &level
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.logger.Warn("invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, h.logger, "failed creating product", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// CreateScannedProduct registers a product from the post-scan form.
func (h *CatalogHandler) CreateScannedProduct(c *gin.Context) {
	var form inventory.ScanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid scan payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.CreateScannedProduct(c.Request.Context(), form)
	if err != nil {
		respondError(c, h.logger, "failed creating scanned product", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateStockQuantity(c *gin.Context) {
	var req stockQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	updated, err := h.svc.UpdateStockQuantity(c.Request.Context(),
		models.ParseID(c.Param("id")),
		models.ParseID(c.Param("stockId")),
		*req.Quantity)
	if err != nil {
		respondError(c, h.logger, "failed updating stock quantity", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.DeleteProduct(c.Request.Context(), models.ParseID(c.Param("id"))); err != nil {
		respondError(c, h.logger, "failed deleting product", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Warehouses lists the sites a scanned product can be received into.
func (h *CatalogHandler) Warehouses(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Warehouses())
}
