package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
	"github.com/yassirrachad97/DepotSmart/internal/messaging"
	"github.com/yassirrachad97/DepotSmart/internal/service/catalog"
)

// ErrValidation indicates caller input was rejected before reaching the store.
var ErrValidation = errors.New("validation failed")

// ErrStockNotFound indicates the product carries no stock with the requested id.
var ErrStockNotFound = errors.New("stock not found")

// ProductStore is the slice of the catalog store client the service relies on.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id models.ID) (*models.Product, error)
	FindProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	PatchProduct(ctx context.Context, id models.ID, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id models.ID) error
}

// ProductListing is a filtered, ordered view plus the filter choices derived
// from the unfiltered collection.
type ProductListing struct {
	Items     []models.Product `json:"items"`
	Count     int              `json:"count"`
	Types     []string         `json:"types"`
	Suppliers []string         `json:"suppliers"`
}

// ScanForm is what an operator fills in after scanning an unknown barcode.
type ScanForm struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Barcode     string   `json:"barcode"`
	Price       *float64 `json:"price"`
	Supplier    string   `json:"supplier"`
	Image       string   `json:"image"`
	WarehouseID string   `json:"warehouseId"`
	Quantity    *int     `json:"quantity"`
}

// Service implements product lookups and mutations on top of the catalog store.
// Store errors are returned unchanged.
type Service struct {
	store      ProductStore
	engine     *catalog.Engine
	publisher  messaging.Publisher
	warehouses []models.Warehouse
	logger     *zap.Logger
	now        func() time.Time
}

// NewService constructs the inventory service. A nil publisher drops stock events.
func NewService(store ProductStore, engine *catalog.Engine, publisher messaging.Publisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = &catalog.Engine{}
	}
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &Service{
		store:      store,
		engine:     engine,
		publisher:  publisher,
		warehouses: models.DefaultWarehouses,
		logger:     logger,
		now:        time.Now,
	}
}

// Warehouses lists the sites a scanned product can be received into.
func (s *Service) Warehouses() []models.Warehouse {
	return s.warehouses
}

// ListProducts fetches the catalog and applies the query in memory.
func (s *Service) ListProducts(ctx context.Context, q models.ProductQuery) (ProductListing, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return ProductListing{}, err
	}

	items := s.engine.Query(products, q)
	types, suppliers := catalog.FilterOptions(products)

	return ProductListing{
		Items:     items,
		Count:     len(items),
		Types:     types,
		Suppliers: suppliers,
	}, nil
}

// GetProduct fetches one product.
func (s *Service) GetProduct(ctx context.Context, id models.ID) (*models.Product, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	return s.store.GetProduct(ctx, id)
}

// LookupBarcode resolves a scanned barcode. A nil product with a nil error
// means the barcode is unknown.
func (s *Service) LookupBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, fmt.Errorf("%w: barcode is required", ErrValidation)
	}

	product, err := s.store.FindProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("barcode looked up", zap.String("barcode", barcode), zap.Bool("found", product != nil))
	return product, nil
}

// CreateProduct validates a new product and sends it to the store.
func (s *Service) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	if err := validateNewProduct(product); err != nil {
		return nil, err
	}

	created, err := s.store.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", created.ID.String()),
		zap.String("barcode", created.Barcode))
	return created, nil
}

// CreateScannedProduct builds a product with a single stock entry at the chosen
// warehouse from a scan form, then creates it.
func (s *Service) CreateScannedProduct(ctx context.Context, form ScanForm) (*models.Product, error) {
	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", form.Name},
		{"type", form.Type},
		{"barcode", form.Barcode},
		{"supplier", form.Supplier},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if form.Price == nil {
		missing = append(missing, "price")
	}
	if form.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields %s", ErrValidation, strings.Join(missing, ", "))
	}

	warehouseID := form.WarehouseID
	if warehouseID == "" && len(s.warehouses) > 0 {
		warehouseID = s.warehouses[0].ID.String()
	}
	warehouse, ok := models.FindWarehouse(s.warehouses, models.ParseID(warehouseID))
	if !ok {
		return nil, fmt.Errorf("%w: unknown warehouse %q", ErrValidation, warehouseID)
	}

	product := models.Product{
		Name:     strings.TrimSpace(form.Name),
		Type:     strings.TrimSpace(form.Type),
		Barcode:  strings.TrimSpace(form.Barcode),
		Price:    *form.Price,
		Supplier: strings.TrimSpace(form.Supplier),
		Image:    strings.TrimSpace(form.Image),
		Stocks:   []models.Stock{warehouse.Stock(*form.Quantity)},
		EditedBy: []models.EditHistory{},
	}

	return s.CreateProduct(ctx, product)
}

// UpdateStockQuantity sets the quantity of one stock location. The whole
// stocks array is sent back so the store replaces it in one write.
func (s *Service) UpdateStockQuantity(ctx context.Context, productID, stockID models.ID, quantity int) (*models.Product, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity %d must not be negative", ErrValidation, quantity)
	}
	if productID.IsZero() || stockID.IsZero() {
		return nil, fmt.Errorf("%w: product id and stock id are required", ErrValidation)
	}

	product, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	idx := product.StockByID(stockID)
	if idx < 0 {
		return nil, fmt.Errorf("product %s stock %s: %w", productID, stockID, ErrStockNotFound)
	}

	stocks := make([]models.Stock, len(product.Stocks))
	copy(stocks, product.Stocks)
	previous := stocks[idx].Quantity
	stocks[idx].Quantity = quantity

	updated, err := s.store.PatchProduct(ctx, productID, models.ProductPatch{Stocks: stocks})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock quantity updated",
		zap.String("product_id", productID.String()),
		zap.String("stock_id", stockID.String()),
		zap.Int("previous", previous),
		zap.Int("quantity", quantity))

	event := messaging.StockQuantityChanged{
		ProductID:        productID.String(),
		ProductName:      updated.Name,
		Barcode:          updated.Barcode,
		StockID:          stockID.String(),
		PreviousQuantity: previous,
		Quantity:         quantity,
		OccurredAt:       s.now().UTC(),
	}
	if err := s.publisher.PublishEvent(ctx, productID.String(), event); err != nil {
		// the store already holds the new quantity
		s.logger.Warn("failed to publish stock event", zap.String("product_id", productID.String()), zap.Error(err))
	}

	return updated, nil
}

// DeleteProduct removes a product from the store.
func (s *Service) DeleteProduct(ctx context.Context, id models.ID) error {
	if id.IsZero() {
		return fmt.Errorf("%w: product id is required", ErrValidation)
	}
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}

func validateNewProduct(p models.Product) error {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(p.Barcode) == "" {
		missing = append(missing, "barcode")
	}
	if strings.TrimSpace(p.Supplier) == "" {
		missing = append(missing, "supplier")
	}
	if len(p.Stocks) == 0 {
		missing = append(missing, "stocks")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields %s", ErrValidation, strings.Join(missing, ", "))
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	seen := make(map[string]struct{}, len(p.Stocks))
	for _, st := range p.Stocks {
		if st.ID.IsZero() {
			continue
		}
		if _, dup := seen[st.ID.String()]; dup {
			return fmt.Errorf("%w: duplicate stock id %s", ErrValidation, st.ID)
		}
		seen[st.ID.String()] = struct{}{}
	}
	return nil
}
