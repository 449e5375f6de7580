package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"product-registry-backend/internal/domains/product"
	"product-registry-backend/internal/infrastructure/storage"
)

// On-disk layout, fixed by contract with existing data directories:
// productos.jsonl holds one JSON object per line and is authoritative for
// reads; productos.txt is the pipe-delimited audit log, header row first,
// write-only.
const (
	journalFile = "productos.jsonl"
	auditFile   = "productos.txt"
	auditHeader = "id|nombre|categoria|precio|stock|creado_en|descripcion"
)

func init() {
	// Journal lines carry the price as a JSON number, like every other
	// numeric field on the line.
	decimal.MarshalJSONWithoutQuotes = true
}

// FileStore is the file-backed product.Repository. It owns both log files
// under one data directory; the journal is the single source of truth and
// the audit log is never read back. Writers are serialized by the service's
// create gate, not here.
type FileStore struct {
	journalPath string
	auditPath   string
}

// NewFileStore creates the data directory if needed and makes sure the
// audit log starts with its header row before the first append.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := storage.EnsureDir(dataDir); err != nil {
		return nil, err
	}

	s := &FileStore{
		journalPath: filepath.Join(dataDir, journalFile),
		auditPath:   filepath.Join(dataDir, auditFile),
	}

	if !storage.Exists(s.auditPath) {
		if err := storage.AppendLine(s.auditPath, auditHeader); err != nil {
			return nil, fmt.Errorf("write audit header: %w", err)
		}
	}

	return s, nil
}

// Append writes the record to the journal first, then to the audit log.
// The journal write failing means nothing was committed. The audit write
// failing still fails the append, but the journal line already exists:
// the record stays readable and its id stays consumed.
func (s *FileStore) Append(ctx context.Context, p *product.Product) error {
	line, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode product %d: %w", p.ID, err)
	}

	if err := storage.AppendLine(s.journalPath, string(line)); err != nil {
		return fmt.Errorf("append journal: %w", err)
	}

	if err := storage.AppendLine(s.auditPath, auditRow(p)); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}

	return nil
}

// GetAll scans the journal in file order. Lines that fail to decode are
// skipped on purpose (one corrupt line must not take down the rest of
// the data) and logged at debug so the corruption is not invisible.
func (s *FileStore) GetAll(ctx context.Context) ([]product.Product, error) {
	products := make([]product.Product, 0)

	err := storage.ForEachLine(s.journalPath, func(n int, line []byte) error {
		p, err := decodeLine(line)
		if err != nil {
			if !errors.Is(err, errBlankLine) {
				log.Debug().Int("line", n).Err(err).Msg("Skipping malformed journal line")
			}
			return nil
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan journal: %w", err)
	}

	return products, nil
}

var errStopScan = errors.New("stop scan")

// GetByID scans the journal and returns the first record with a matching
// id. Linear in log size; the system keeps no index on purpose.
func (s *FileStore) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var found *product.Product

	err := storage.ForEachLine(s.journalPath, func(n int, line []byte) error {
		p, err := decodeLine(line)
		if err != nil {
			return nil
		}
		if p.ID == id {
			found = &p
			return errStopScan
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return nil, fmt.Errorf("scan journal: %w", err)
	}

	if found == nil {
		return nil, product.ErrProductNotFound
	}
	return found, nil
}

// LastID reports the highest id present in the journal. It is even more
// lenient than GetAll: a line only needs to be valid JSON with an id field,
// so allocator recovery never re-issues an id just because the rest of a
// record rotted.
func (s *FileStore) LastID(ctx context.Context) (int64, error) {
	var last int64

	err := storage.ForEachLine(s.journalPath, func(n int, line []byte) error {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			return nil
		}
		var probe struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil
		}
		if probe.ID > last {
			last = probe.ID
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan journal: %w", err)
	}

	return last, nil
}

var errBlankLine = errors.New("blank line")

// decodeLine is the single place a journal line becomes a record. The skip
// policy lives in the callers: decodeLine reports what is wrong, the scan
// loops choose to move on.
func decodeLine(line []byte) (product.Product, error) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return product.Product{}, errBlankLine
	}

	var p product.Product
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return product.Product{}, fmt.Errorf("decode: %w", err)
	}
	if p.ID <= 0 {
		return product.Product{}, errors.New("missing or invalid id")
	}
	if p.Name == "" {
		return product.Product{}, errors.New("missing name")
	}
	if p.CreatedAt.IsZero() {
		return product.Product{}, errors.New("missing created_at")
	}
	return p, nil
}

// auditRow renders one pipe-delimited row. Pipes and newlines inside
// string fields are substituted so the column structure never breaks.
func auditRow(p *product.Product) string {
	return fmt.Sprintf("%d|%s|%s|%s|%d|%s|%s",
		p.ID,
		escapeField(p.Name),
		escapeField(derefString(p.Category)),
		p.Price.String(),
		p.Stock,
		p.CreatedAt.Format(time.RFC3339Nano),
		escapeField(derefString(p.Description)),
	)
}

func escapeField(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "/")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
