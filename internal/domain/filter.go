package domain

import (
	"sort"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Window é o intervalo de meses (inclusivo) consultado no warehouse
type Window struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func NewWindow(start, end time.Time) Window {
	return Window{Start: MonthStart(start), End: end}
}

// String retorna o intervalo no formato "YYYY-MM-DD to YYYY-MM-DD"
func (w Window) String() string {
	return w.Start.Format(DateLayout) + " to " + w.End.Format(DateLayout)
}

func (w Window) Valid() bool {
	return !w.Start.IsZero() && !w.End.IsZero() && !w.End.Before(w.Start)
}

// AccountFilter é o predicado compartilhado por todas as consultas de métricas.
// Um conjunto vazio significa "sem filtro" naquela dimensão.
type AccountFilter struct {
	Segments   []string `json:"segments,omitempty"`
	Regions    []string `json:"regions,omitempty"`
	Industries []string `json:"industries,omitempty"`
	RepTeams   []string `json:"rep_teams,omitempty"`
	RepRegions []string `json:"rep_regions,omitempty"`
}

func (f AccountFilter) IsEmpty() bool {
	return len(f.Segments) == 0 && len(f.Regions) == 0 && len(f.Industries) == 0 &&
		len(f.RepTeams) == 0 && len(f.RepRegions) == 0
}

// HasRepClauses indica se o filtro depende da tabela de vendedores
func (f AccountFilter) HasRepClauses() bool {
	return len(f.RepTeams) > 0 || len(f.RepRegions) > 0
}

// Normalized retorna uma cópia com valores ordenados e sem duplicados,
// para que seleções equivalentes gerem a mesma chave de cache.
func (f AccountFilter) Normalized() AccountFilter {
	return AccountFilter{
		Segments:   normalizeSet(f.Segments),
		Regions:    normalizeSet(f.Regions),
		Industries: normalizeSet(f.Industries),
		RepTeams:   normalizeSet(f.RepTeams),
		RepRegions: normalizeSet(f.RepRegions),
	}
}

func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}

	sort.Strings(out)
	return out
}

// MonthStart trunca a data para o primeiro dia do mês
func MonthStart(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FilterDomains contém os valores distintos disponíveis para cada dimensão de filtro
type FilterDomains struct {
	Segments   []string `json:"segments"`
	Regions    []string `json:"regions"`
	Industries []string `json:"industries"`
	RepTeams   []string `json:"rep_teams"`
	RepRegions []string `json:"rep_regions"`
}

type DateBounds struct {
	MinMonth time.Time `json:"min_month"`
	MaxMonth time.Time `json:"max_month"`
}
