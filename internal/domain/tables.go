package domain

type Dataset string

const (
	DatasetAccounts       Dataset = "ACCOUNTS"
	DatasetSalesReps      Dataset = "SALES_REPS"
	DatasetFctMRR         Dataset = "FCT_MRR"
	DatasetFctPipeline    Dataset = "FCT_PIPELINE"
	DatasetStageHistory   Dataset = "STAGE_HISTORY"
	DatasetSupportTickets Dataset = "SUPPORT_TICKETS"
	DatasetHealthSnapshot Dataset = "HEALTH_SNAPSHOT"
)

// Datasets na ordem em que são resolvidos e exibidos
var Datasets = []Dataset{
	DatasetAccounts,
	DatasetSalesReps,
	DatasetFctMRR,
	DatasetFctPipeline,
	DatasetStageHistory,
	DatasetSupportTickets,
	DatasetHealthSnapshot,
}

// RequiredDatasets sem os quais nenhuma métrica pode ser calculada
var RequiredDatasets = []Dataset{DatasetAccounts, DatasetFctMRR, DatasetFctPipeline}

// ResolvedTables mapeia cada dataset lógico para a tabela encontrada ("" quando nenhuma candidata respondeu)
type ResolvedTables map[Dataset]string

func (t ResolvedTables) Get(dataset Dataset) (string, bool) {
	name, ok := t[dataset]
	return name, ok && name != ""
}

// Missing retorna os datasets da lista que não foram resolvidos
func (t ResolvedTables) Missing(datasets ...Dataset) []Dataset {
	missing := make([]Dataset, 0)
	for _, d := range datasets {
		if _, ok := t.Get(d); !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

// TableNotFound marca na listagem os datasets sem tabela
const TableNotFound = "NOT FOUND"

type ResolvedTable struct {
	Dataset Dataset `json:"dataset"`
	Table   string  `json:"table"`
}

// Listing retorna as tabelas resolvidas em ordem estável, com TableNotFound para as ausentes
func (t ResolvedTables) Listing() []ResolvedTable {
	out := make([]ResolvedTable, 0, len(Datasets))
	for _, d := range Datasets {
		name, ok := t.Get(d)
		if !ok {
			name = TableNotFound
		}
		out = append(out, ResolvedTable{Dataset: d, Table: name})
	}
	return out
}
