package controller_test

import (
	"fanvote/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{path: "/debug/pprof/", want: http.StatusOK},
		{path: "/debug/pprof/cmdline", want: http.StatusOK},
		{path: "/debug/pprof/heap", want: http.StatusOK},
		{path: "/debug/pprof/goroutine?debug=1", want: http.StatusOK},
		{path: "/debug/pprof/no-such-profile", want: http.StatusNotFound},
		{path: "/metrics", want: http.StatusNotFound},
	}

	mux := controller.PprofMux()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://ops.local"+tt.path, nil))
			require.Equal(t, tt.want, rec.Code)
		})
	}
}
