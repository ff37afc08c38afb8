package sheets

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

type memorySheet struct {
	ranges []string
	rows   [][]interface{}
}

func (m *memorySheet) WriteRow(_ context.Context, sheetRange string, values []interface{}) error {
	m.ranges = append(m.ranges, sheetRange)
	m.rows = append(m.rows, values)
	return nil
}

func TestExportSnapshotWritesStatisticsRow(t *testing.T) {
	sheet := &memorySheet{}
	snap := models.StatisticsSnapshot{
		ID:      "snap-1",
		TakenAt: time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC),
		Statistics: models.Statistics{
			TotalProducts:   12,
			OutOfStock:      2,
			TotalStockValue: 1530.75,
		},
	}

	if err := NewStatisticsExporter(sheet).ExportSnapshot(context.Background(), snap); err != nil {
		t.Fatalf("ExportSnapshot error: %v", err)
	}
	if len(sheet.ranges) != 1 || sheet.ranges[0] != statisticsRange {
		t.Fatalf("ranges got %v", sheet.ranges)
	}
	want := []interface{}{"2026-10-17T08:00:00Z", "snap-1", 12, 2, 1530.75}
	if !reflect.DeepEqual(sheet.rows[0], want) {
		t.Fatalf("row got %v want %v", sheet.rows[0], want)
	}
}
