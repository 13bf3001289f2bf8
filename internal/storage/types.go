package storage

import (
	"context"
	"time"
)

// ActionStartInterview - единственное действие, которое попадает в журнал
const ActionStartInterview = "Clicked on Start Interview"

// TimestampLayout совпадает с форматом, в котором таблица уже хранит время
const TimestampLayout = "2006-01-02 15:04:05"

// UsageHeader - заголовки вкладки журнала
var UsageHeader = []string{"Timestamp", "User", "Action", "Painpoint", "Customer_Profile"}

// EmailColumn - заголовок столбца со списком доступа
const EmailColumn = "Email"

// UsageEntry - одна строка журнала использования
type UsageEntry struct {
	Timestamp       time.Time `json:"timestamp"`
	User            string    `json:"user"`
	Action          string    `json:"action"`
	Painpoint       string    `json:"painpoint"`
	CustomerProfile string    `json:"customer_profile"`
}

// Row возвращает ячейки в порядке UsageHeader
func (e UsageEntry) Row() []string {
	return []string{
		e.Timestamp.Format(TimestampLayout),
		e.User,
		e.Action,
		e.Painpoint,
		e.CustomerProfile,
	}
}

// AllowlistReader читает список email-адресов с доступом
type AllowlistReader interface {
	ReadAllowlist(ctx context.Context) ([]string, error)
}

// UsageLogger дописывает строки в журнал; строки никогда не меняются и не удаляются
type UsageLogger interface {
	AppendUsage(ctx context.Context, entry UsageEntry) error
}

type Store interface {
	AllowlistReader
	UsageLogger
}
