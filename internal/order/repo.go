package order

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/MikeMC777/pedidos-taller/internal/preview"
)

var (
	ErrNotFound = errors.New("order not found")
)

// SaveResult reports what a Save materialized: the workbook's basename and
// the preview image filenames that were actually stored.
type SaveResult struct {
	File   string
	Images []string
}

type Repository interface {
	Save(ctx context.Context, o *Order, items []NewItem) (*SaveResult, error)
	GetItems(ctx context.Context, orderID string) ([]Item, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	ListFiles(ctx context.Context) ([]string, error)
}

// XLSXRepo keeps one workbook per order id under dir. Operations on the same
// order id are serialized through a per-id mutex; without it, concurrent
// writers race at the filesystem level and the last one wins. Cross-process
// writers still race.
type XLSXRepo struct {
	dir      string
	previews *preview.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewXLSXRepo(dir string, previews *preview.Store) *XLSXRepo {
	return &XLSXRepo{dir: dir, previews: previews, locks: map[string]*sync.Mutex{}}
}

func fileName(orderID string) string { return fmt.Sprintf("orderData-%s.xlsx", orderID) }

func (r *XLSXRepo) path(orderID string) string { return filepath.Join(r.dir, fileName(orderID)) }

func (r *XLSXRepo) lock(orderID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.locks[orderID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[orderID] = m
	}
	return m
}

// Save writes a fresh workbook for the order: header row once, then one row
// per item in submission order. An existing file for the same id is
// overwritten wholesale; appending to old files mixes schema versions.
// A preview that fails to decode or write only blanks that item's linkImg,
// the row itself is still written.
func (r *XLSXRepo) Save(ctx context.Context, o *Order, items []NewItem) (*SaveResult, error) {
	m := r.lock(o.ID)
	m.Lock()
	defer m.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create orders dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	header := headerRow()
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, c := range sheetColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, col, col, c.Width)
	}

	images := []string{}
	for i, it := range items {
		pos := i + 1
		link := ""
		if it.PreviewImage != "" {
			url, err := r.previews.Save(o.ID, pos, it.PreviewImage)
			if err != nil {
				log.Printf("[order] preview %s-%d: %v", o.ID, pos, err)
			} else if url != "" {
				link = url
				images = append(images, preview.Filename(o.ID, pos))
			}
		}
		row := encodeRow(o, it, pos, link)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", pos, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", pos, err)
		}
	}

	if err := f.SaveAs(r.path(o.ID)); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	log.Printf("[order] orden %s guardada, items=%d imgs=%d", o.ID, len(items), len(images))
	return &SaveResult{File: fileName(o.ID), Images: images}, nil
}

// GetItems decodes every data row in file order, which equals write order.
// Rows without a recorded image reference get a best-effort lookup against
// the preview directory (legacy files predate the recorded reference).
func (r *XLSXRepo) GetItems(ctx context.Context, orderID string) ([]Item, error) {
	m := r.lock(orderID)
	m.Lock()
	defer m.Unlock()

	f, err := r.open(orderID)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet(f))
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	var items []Item
	for i, vals := range rows {
		if i == 0 || len(vals) == 0 {
			continue // header or padding row
		}
		it := decodeRow(vals)
		if it.LinkImg == "" {
			it.LinkImg = r.previews.Lookup(orderID)
		}
		items = append(items, it)
	}
	return items, nil
}

// UpdateStatus rewrites the status column of every data row to status,
// leaving everything else untouched. Bulk by design: rows of one order do
// not carry independent statuses after this call.
func (r *XLSXRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	m := r.lock(orderID)
	m.Lock()
	defer m.Unlock()

	f, err := r.open(orderID)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := r.sheet(f)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read workbook: %w", err)
	}
	for n := 2; n <= len(rows); n++ {
		cell, err := excelize.CoordinatesToCellName(colStatus+1, n)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, status); err != nil {
			return fmt.Errorf("update row %d: %w", n, err)
		}
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	log.Printf("[order] orden %s actualizada a %q", orderID, status)
	return nil
}

// ListFiles enumerates the persisted order workbooks in directory order.
// An absent directory reads as empty and is created for later writes.
func (r *XLSXRepo) ListFiles(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create orders dir: %w", err)
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read orders dir: %w", err)
	}
	out := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xlsx") {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

func (r *XLSXRepo) open(orderID string) (*excelize.File, error) {
	f, err := excelize.OpenFile(r.path(orderID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return f, nil
}

// sheet resolves the worksheet to read: "Orders", else the file's first
// sheet (files produced by other tools may rename it).
func (r *XLSXRepo) sheet(f *excelize.File) string {
	if idx, err := f.GetSheetIndex(sheetName); err == nil && idx >= 0 {
		return sheetName
	}
	return f.GetSheetName(0)
}
