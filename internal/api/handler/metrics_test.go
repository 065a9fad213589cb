package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/kpi"
	exploringmocks "github.com/vfg2006/revenue-intelligence-api/internal/usecases/exploring/mocks"
	kpimocks "github.com/vfg2006/revenue-intelligence-api/internal/usecases/kpi/mocks"
	reportingmocks "github.com/vfg2006/revenue-intelligence-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

const windowQuery = "start=2024-01-01&end=2024-03-01"

var testWindow = domain.Window{Start: date(2024, 1, 1), End: date(2024, 3, 1)}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetARRTrend(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(m *reportingmocks.MockReporter)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Retorna a série de ARR",
			setupMock: func(m *reportingmocks.MockReporter) {
				m.EXPECT().ARRTrend(gomock.Any(), testWindow, domain.AccountFilter{}).
					Return([]domain.ARRPoint{{Month: date(2024, 1, 1), TotalARR: 1200}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Tabela obrigatória ausente responde 503",
			setupMock: func(m *reportingmocks.MockReporter) {
				m.EXPECT().ARRTrend(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &repository.MissingTablesError{Datasets: []domain.Dataset{domain.DatasetFctMRR}})
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   apiErrors.ErrRequiredDatasetMissing,
		},
		{
			name: "Falha no warehouse responde 500",
			setupMock: func(m *reportingmocks.MockReporter) {
				m.EXPECT().ARRTrend(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reporter := reportingmocks.NewMockReporter(ctrl)
			explorer := exploringmocks.NewMockExplorer(ctrl)
			tt.setupMock(reporter)

			rec := httptest.NewRecorder()
			GetARRTrend(reporter, explorer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/revenue/arr?"+windowQuery, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
				return
			}

			var rows []domain.ARRPoint
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
			assert.Len(t, rows, 1)
		})
	}
}

func TestGetARRTrendDataInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	GetARRTrend(reportingmocks.NewMockReporter(ctrl), exploringmocks.NewMockExplorer(ctrl)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/revenue/arr?start=ontem", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestGetTopMoversUsaLimitPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Thresholds: config.Thresholds{TopMoversLimit: 10}}
	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().TopMovers(gomock.Any(), testWindow, domain.AccountFilter{Segments: []string{"SMB"}}, 10).
		Return(&domain.TopMovers{}, nil)

	rec := httptest.NewRecorder()
	GetTopMovers(cfg, reporter, exploringmocks.NewMockExplorer(ctrl)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/revenue/movers?segment=SMB&"+windowQuery, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPipelineCoverage(t *testing.T) {
	tests := []struct {
		name               string
		ratio              *float64
		expectedAssessment string
	}{
		{name: "Cobertura acima da meta", ratio: utils.Float64Ptr(3.5), expectedAssessment: kpi.CoverageHealthy},
		{name: "Sem cobertura calculável", ratio: nil, expectedAssessment: kpi.CoverageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := &config.Config{Thresholds: config.Thresholds{PipelineCoverageTargetX: 3}}
			reporter := reportingmocks.NewMockReporter(ctrl)
			reporter.EXPECT().PipelineCoverage(gomock.Any(), testWindow, gomock.Any()).
				Return(&domain.PipelineCoverage{CoverageRatio: tt.ratio}, nil)

			rec := httptest.NewRecorder()
			GetPipelineCoverage(cfg, reporter, exploringmocks.NewMockExplorer(ctrl)).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pipeline/coverage?"+windowQuery, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var resp CoverageResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedAssessment, resp.Assessment)
			assert.Equal(t, 3.0, resp.TargetX)
		})
	}
}

func TestGetStageDynamicsIgnoraJanela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().StageDynamics(gomock.Any(), domain.AccountFilter{Regions: []string{"EMEA"}}).
		Return(&domain.StageDynamics{Available: false}, nil)

	rec := httptest.NewRecorder()
	GetStageDynamics(reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pipeline/stage-dynamics?region=EMEA", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":false,"durations":null,"conversions":null}`, rec.Body.String())
}

func TestGetKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summarizer := kpimocks.NewMockSummarizer(ctrl)
	summarizer.EXPECT().Summarize(gomock.Any(), testWindow, domain.AccountFilter{}).Return(&domain.KPISnapshot{
		Window:        testWindow,
		Display:       domain.KPIDisplay{NRR: "N/A"},
		Alerts:        []string{"NRR abaixo de 90%"},
		SectionErrors: map[string]string{domain.SectionCoverage: "timeout"},
	}, nil)

	rec := httptest.NewRecorder()
	GetKPIs(summarizer, exploringmocks.NewMockExplorer(ctrl)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/kpis?"+windowQuery, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot domain.KPISnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, "N/A", snapshot.Display.NRR)
	assert.Equal(t, []string{"NRR abaixo de 90%"}, snapshot.Alerts)
	assert.Equal(t, "timeout", snapshot.SectionErrors[domain.SectionCoverage])
}

func TestGetRetentionQuality(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summarizer := kpimocks.NewMockSummarizer(ctrl)
	summarizer.EXPECT().RetentionQuality(gomock.Any(), testWindow, gomock.Any()).
		Return(&domain.RetentionQualityReport{RetentionQuality: domain.RetentionQuality{RetentionInterpretable: true}}, nil)

	rec := httptest.NewRecorder()
	GetRetentionQuality(summarizer, exploringmocks.NewMockExplorer(ctrl)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/quality/retention?"+windowQuery, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"retention_interpretable":true`)
}

func TestGetHealthSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().HealthSnapshot(gomock.Any(), testWindow, gomock.Any()).Return(&domain.HealthSnapshot{}, nil)

	rec := httptest.NewRecorder()
	GetHealthSnapshot(reporter, exploringmocks.NewMockExplorer(ctrl)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health?"+windowQuery, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
