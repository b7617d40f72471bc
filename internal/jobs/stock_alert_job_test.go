package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"sitta/internal/core/application/usecases/queries"
	"sitta/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStockAlertsHandler struct {
	mock.Mock
}

func (m *MockStockAlertsHandler) Handle(
	ctx context.Context,
	query queries.GetStockAlertsQuery,
) (queries.GetStockAlertsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetStockAlertsQueryResponse), args.Error(1)
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}

func TestStockAlertJob_Check(t *testing.T) {
	t.Run("logs empty and low items", func(t *testing.T) {
		// Given
		handler := new(MockStockAlertsHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetStockAlertsQueryResponse{
			Empty: []queries.StockItemResponse{{Code: "EKMA4116", Title: "Pengantar Manajemen"}},
			Low:   []queries.StockItemResponse{{Code: "BIOL4211", Title: "Mikrobiologi Dasar", Quantity: 3, Safety: 10}},
		}, nil)
		logger, buf := newBufferLogger()
		job := jobs.NewStockAlertJob(handler, "0 */5 * * * *", logger)

		// When
		job.Check(context.Background())

		// Then
		out := buf.String()
		assert.Contains(t, out, `"msg":"Stock item is empty"`)
		assert.Contains(t, out, `"code":"EKMA4116"`)
		assert.Contains(t, out, `"msg":"Stock item is below safety level"`)
		assert.Contains(t, out, `"code":"BIOL4211"`)
		assert.Contains(t, out, `"empty":1`)
		assert.Contains(t, out, `"low":1`)
		assert.Contains(t, out, `"component":"stock_alert_job"`)
		handler.AssertExpectations(t)
	})

	t.Run("nothing to report", func(t *testing.T) {
		handler := new(MockStockAlertsHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetStockAlertsQueryResponse{}, nil)
		logger, buf := newBufferLogger()
		job := jobs.NewStockAlertJob(handler, "0 */5 * * * *", logger)

		job.Check(context.Background())

		assert.Contains(t, buf.String(), "All stock items are above their safety level")
		assert.NotContains(t, buf.String(), "Stock item is empty")
	})

	t.Run("handler error is logged", func(t *testing.T) {
		handler := new(MockStockAlertsHandler)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetStockAlertsQueryResponse{}, errors.New("store unavailable"))
		logger, buf := newBufferLogger()
		job := jobs.NewStockAlertJob(handler, "0 */5 * * * *", logger)

		job.Check(context.Background())

		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), "store unavailable")
	})
}

func TestJobManager(t *testing.T) {
	t.Run("start and stop", func(t *testing.T) {
		handler := new(MockStockAlertsHandler)
		logger, buf := newBufferLogger()
		manager := jobs.NewJobManager(handler, "0 0 3 * * *", logger)

		require.NoError(t, manager.StartAll())
		manager.StopAll()

		assert.Contains(t, buf.String(), "Stock alert job started")
		assert.Contains(t, buf.String(), "Stock alert job stopped")
	})

	t.Run("invalid schedule", func(t *testing.T) {
		handler := new(MockStockAlertsHandler)
		logger, _ := newBufferLogger()
		manager := jobs.NewJobManager(handler, "every five minutes", logger)

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start stock alert job")
	})
}
