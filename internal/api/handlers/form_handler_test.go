package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTrigger struct {
	ctx context.Context
}

func (r *recordingTrigger) TriggerNow(ctx context.Context) (application.SweepResult, error) {
	r.ctx = ctx
	return application.SweepResult{RunID: "run-1"}, nil
}

func TestGeneratePeriodic_SweepOutlivesRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	trigger := &recordingTrigger{}
	h := NewFormHandler(nil, trigger)

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/forms/generate-periodic", nil).WithContext(reqCtx)

	h.GeneratePeriodic(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, trigger.ctx)
	assert.NoError(t, trigger.ctx.Err())
	assert.Contains(t, w.Body.String(), "run-1")
}
