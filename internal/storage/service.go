package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/DriesFaems/interview-generator-students/internal/config"
)

// Open создает хранилище по STORAGE_BACKEND
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendSheets:
		s, err := NewSheetsStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendCSV:
		return NewCSVStore(cfg.CSVDir, cfg.UsageSheet, cfg.AccessSheet), nil
	case config.BackendMemory:
		return NewMemoryStore(cfg.AccessEmails...), nil
	default:
		return nil, fmt.Errorf("неизвестный backend хранилища %q", cfg.Backend)
	}
}

// emailColumn достает значения столбца Email; первая строка - заголовки
func emailColumn(rows [][]string) ([]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("вкладка доступа пуста")
	}

	col := -1
	for i, h := range rows[0] {
		// выгрузки из Excel и Sheets начинаются с BOM
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.TrimSpace(h) == EmailColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("во вкладке доступа нет столбца %q", EmailColumn)
	}

	emails := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[col]); v != "" {
			emails = append(emails, v)
		}
	}

	return emails, nil
}
