package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgball2608/content-scheduler/internal/realtime"
	mock_realtime "github.com/orgball2608/content-scheduler/internal/realtime/mocks"
	"github.com/orgball2608/content-scheduler/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthz(t *testing.T) {
	cases := []struct {
		state    realtime.State
		attempts int
		want     string
	}{
		{realtime.StateOpen, 0, `{"status":"ok","realtime":"open","attempts":0}`},
		{realtime.StateReconnecting, 2, `{"status":"ok","realtime":"reconnecting","attempts":2}`},
		{realtime.StateGivingUp, 6, `{"status":"degraded","realtime":"giving_up","attempts":6}`},
	}

	for _, tc := range cases {
		t.Run(string(tc.state), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock_realtime.NewMockSession(ctrl)
			session.EXPECT().State().Return(tc.state)
			session.EXPECT().Attempts().Return(tc.attempts)

			rec := httptest.NewRecorder()
			newRouter(logger.Nop(), session).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.want, rec.Body.String())
		})
	}
}
