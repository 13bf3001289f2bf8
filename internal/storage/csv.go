package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CSVStore хранит вкладки таблицы как <dir>/<вкладка>.csv
type CSVStore struct {
	dir         string
	usageSheet  string
	accessSheet string
	mu          sync.Mutex
}

func NewCSVStore(dir, usageSheet, accessSheet string) *CSVStore {
	return &CSVStore{
		dir:         dir,
		usageSheet:  usageSheet,
		accessSheet: accessSheet,
	}
}

func (s *CSVStore) path(sheet string) string {
	return filepath.Join(s.dir, sheet+".csv")
}

func (s *CSVStore) ReadAllowlist(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path(s.accessSheet))
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", s.path(s.accessSheet), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга CSV %s: %w", s.path(s.accessSheet), err)
	}

	return emailColumn(rows)
}

func (s *CSVStore) AppendUsage(ctx context.Context, entry UsageEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("ошибка создания директории %s: %w", s.dir, err)
	}

	path := s.path(s.usageSheet)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(UsageHeader); err != nil {
			return fmt.Errorf("ошибка записи заголовка: %w", err)
		}
	}
	if err := w.Write(entry.Row()); err != nil {
		return fmt.Errorf("ошибка записи строки: %w", err)
	}
	w.Flush()

	return w.Error()
}
