package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kamehameha/internal/services"
)

type stubSweepService struct {
	report services.SweepReport
	err    error
}

func (s *stubSweepService) RunOnce(ctx context.Context) (services.SweepReport, error) {
	return s.report, s.err
}

func newSweepContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/awards/sweep", nil)
	return c, rec
}

func TestRunSweepReportsSuccess(t *testing.T) {
	sweep := &stubSweepService{report: services.SweepReport{JourneysSeen: 2, JourneysProcessed: 2}}
	ctrl := &AwardController{sweepService: sweep}

	c, rec := newSweepContext(t)
	ctrl.RunSweep(c)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

// The sweep's query error must reach the error handler unwrapped so the
// cause lands in the controller log, not a generic database sentinel.
func TestRunSweepSurfacesQueryError(t *testing.T) {
	sweep := &stubSweepService{err: errors.New("connection refused")}
	ctrl := &AwardController{sweepService: sweep}

	c, rec := newSweepContext(t)
	ctrl.RunSweep(c)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
