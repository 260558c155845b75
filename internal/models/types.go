package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// Date é uma coluna date no formato YYYY-MM-DD. Vazio vira NULL, e as
// colunas NOT NULL recusam no banco.
type Date string

func (Date) GormDataType() string {
	return "date"
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case string:
		*d = Date(truncate(v, len(DateLayout)))
	case []byte:
		*d = Date(truncate(string(v), len(DateLayout)))
	default:
		return fmt.Errorf("models: cannot scan %T into Date", src)
	}
	return nil
}

// ClockTime é uma coluna time no formato HH:MM:SS. A entrada pode vir
// HH:MM, o banco normaliza.
type ClockTime string

func (ClockTime) GormDataType() string {
	return "time"
}

func (t ClockTime) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}

func (t *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case time.Time:
		*t = ClockTime(v.Format(ClockLayout))
	case string:
		*t = ClockTime(dropFraction(v))
	case []byte:
		*t = ClockTime(dropFraction(string(v)))
	case int64:
		// microssegundos desde meia-noite
		d := time.Duration(v) * time.Microsecond
		*t = ClockTime(time.Time{}.Add(d).Format(ClockLayout))
	default:
		return fmt.Errorf("models: cannot scan %T into ClockTime", src)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func dropFraction(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}
