package warmup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/cakeshop/lib/mykv"
)

func TestWarmup(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		httpStatus int
	}{
		{name: "Store reachable", err: nil, httpStatus: http.StatusOK},
		{name: "Store unavailable", err: fmt.Errorf("connection refused"), httpStatus: http.StatusServiceUnavailable},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			ctrl := gomock.NewController(t)
			kv := mykv.NewMockKeyValueStore(ctrl)
			kv.EXPECT().Get(gomock.Any(), probeKey).Return("", false, tc.err)
			router := mux.NewRouter()
			NewService(kv).RegisterEndpoints(context.TODO(), router)

			// when
			request, err := http.NewRequest(http.MethodGet, "/_ah/warmup", nil)
			assert.NoError(t, err)
			response := httptest.NewRecorder()
			router.ServeHTTP(response, request)

			// then
			assert.Equal(t, tc.httpStatus, response.Code)
		})
	}
}
