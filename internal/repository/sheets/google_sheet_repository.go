package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/yassirrachad97/DepotSmart/internal/config"
	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

const statisticsRange = "Statistics!A:E"

// Repository appends rows to a spreadsheet.
type Repository interface {
	WriteRow(ctx context.Context, sheetRange string, values []interface{}) error
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// WriteRow appends the provided values to the supplied sheet range.
func (r *GoogleSheetRepository) WriteRow(ctx context.Context, sheetRange string, values []interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", sheetRange, err)
	}

	r.logger.Debug("row appended to sheet", zap.String("range", sheetRange))
	return nil
}

// StatisticsExporter appends statistics snapshots as spreadsheet rows.
type StatisticsExporter struct {
	repo Repository
}

// NewStatisticsExporter wraps a sheet repository.
func NewStatisticsExporter(repo Repository) *StatisticsExporter {
	return &StatisticsExporter{repo: repo}
}

// ExportSnapshot writes one row: taken at, snapshot id, total products, out of stock, stock value.
func (e *StatisticsExporter) ExportSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error {
	return e.repo.WriteRow(ctx, statisticsRange, SnapshotRow(snapshot))
}

// SnapshotRow renders a snapshot as spreadsheet cells.
func SnapshotRow(snapshot models.StatisticsSnapshot) []interface{} {
	return []interface{}{
		snapshot.TakenAt.Format(time.RFC3339),
		snapshot.ID,
		snapshot.Statistics.TotalProducts,
		snapshot.Statistics.OutOfStock,
		snapshot.Statistics.TotalStockValue,
	}
}
