package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
)

type fakeWarmup struct {
	triggered int
	cleared   int
}

func (f *fakeWarmup) TriggerManualSync() { f.triggered++ }
func (f *fakeWarmup) ClearCache()        { f.cleared++ }
func (f *fakeWarmup) GetStatus() map[string]any {
	return map[string]any{"is_running": false}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name              string
		cronType          string
		expectedStatus    int
		expectedTriggered int
		expectedCleared   int
	}{
		{name: "Aquecimento manual", cronType: CronJobTypeWarmup, expectedStatus: http.StatusAccepted, expectedTriggered: 1},
		{name: "Limpeza do cache", cronType: CronJobTypeCache, expectedStatus: http.StatusAccepted, expectedCleared: 1},
		{name: "Limpeza seguida de aquecimento", cronType: CronJobTypeAll, expectedStatus: http.StatusAccepted, expectedTriggered: 1, expectedCleared: 1},
		{name: "Tipo desconhecido", cronType: "meta", expectedStatus: http.StatusBadRequest},
		{name: "Tipo ausente", cronType: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warmup := &fakeWarmup{}
			req := withParam(httptest.NewRequest(http.MethodPost, "/v1/cron/x/run", nil), "type", tt.cronType)
			rec := httptest.NewRecorder()

			RunCronJob(warmup).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedTriggered, warmup.triggered)
			assert.Equal(t, tt.expectedCleared, warmup.cleared)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	t.Run("Retorna o status do aquecimento", func(t *testing.T) {
		req := withParam(httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil), "type", "status")
		rec := httptest.NewRecorder()

		GetCronStatus(&fakeWarmup{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"warmup":{"is_running":false}}`, rec.Body.String())
	})

	t.Run("Outro valor no lugar de status", func(t *testing.T) {
		req := withParam(httptest.NewRequest(http.MethodGet, "/v1/cron/warmup", nil), "type", "warmup")
		rec := httptest.NewRecorder()

		GetCronStatus(&fakeWarmup{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
	})
}
