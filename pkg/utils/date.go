package utils

import (
	"time"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

// ParseDate interpreta datas no formato YYYY-MM-DD; string vazia retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// FormatDate retorna nil para datas nulas, para que o JSON carregue null
func FormatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}
