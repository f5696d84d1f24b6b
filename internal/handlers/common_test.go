package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/student-records/internal/logger"
	"github.com/sbilibin2017/student-records/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorLogCarriesRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zapcore.ErrorLevel)
	originalLog := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = originalLog }()

	mockSvc := NewMockSummaryGetter(ctrl)
	mockSvc.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("database failure"))

	handler := NewHomeHandler(mockSvc, newTestRenderer(t), newTestFlashes())
	rr := serve(func(r chi.Router) {
		r.Use(middlewares.LoggingMiddleware(zap.NewNop().Sugar()))
		RegisterHomeHandler(r, handler)
	}, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	entries := logs.FilterMessage("failed to load summary").All()
	require.Len(t, entries, 1)
	reqID := rr.Header().Get(middlewares.RequestIDHeader)
	require.NotEmpty(t, reqID)
	assert.Equal(t, reqID, entries[0].ContextMap()["request_id"])
}
