package storage

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/DriesFaems/interview-generator-students/internal/config"
)

// SheetsStore работает с Google таблицей: журнал и список доступа на разных вкладках
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	usageSheet    string
	accessSheet   string
}

func NewSheetsStore(ctx context.Context, cfg config.StorageConfig, opts ...option.ClientOption) (*SheetsStore, error) {
	if len(opts) == 0 {
		opts = []option.ClientOption{
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		}
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к Google Sheets: %w", err)
	}

	return &SheetsStore{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		usageSheet:    cfg.UsageSheet,
		accessSheet:   cfg.AccessSheet,
	}, nil
}

func (s *SheetsStore) ReadAllowlist(ctx context.Context) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetRange(s.accessSheet)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения вкладки %s: %w", s.accessSheet, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		row := make([]string, len(r))
		for i, cell := range r {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}

	return emailColumn(rows)
}

// AppendUsage добавляет строку в конец вкладки журнала без блокировок.
// RAW: текст формы пишется как есть и не разбирается как формула.
func (s *SheetsStore) AppendUsage(ctx context.Context, entry UsageEntry) error {
	cells := entry.Row()
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, sheetRange(s.usageSheet), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("ошибка записи во вкладку %s: %w", s.usageSheet, err)
	}

	return nil
}

// sheetRange превращает имя вкладки в диапазон A1; кавычки нужны для пробелов
func sheetRange(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
