package ops_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fanvote/internal/ops"
	"fanvote/pkg/domain"
	"fanvote/pkg/leaderboard"
	"fanvote/pkg/logger"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.Options{Environment: logger.DevelopmentEnvironment}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type fakeStandings struct {
	gotOrg   domain.OrganizationID
	gotLimit int
	entries  []leaderboard.Entry
	err      error
}

func (f *fakeStandings) Standings(
	_ context.Context,
	orgID domain.OrganizationID,
	n int) ([]leaderboard.Entry, error) {
	f.gotOrg, f.gotLimit = orgID, n

	return f.entries, f.err
}

type fixture struct {
	srv   *httptest.Server
	token string
}

func newFixture(t *testing.T, deps ops.Deps) fixture {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "ops",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(priv)
	require.NoError(t, err)

	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.NewRegistry()
	}
	handler, err := ops.NewHandler(deps, ops.Options{
		MetricsPath:  "/metrics",
		PublicKey:    string(pubPEM),
		CheckTimeout: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return fixture{srv: srv, token: token}
}

func (f fixture) get(t *testing.T, path string, authorized bool) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, f.srv.URL+path, nil)
	require.NoError(t, err)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	res, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(body)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, ops.Deps{})

	code, body := f.get(t, "/healthz", false)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"status":"ok"}`, body)
}

func TestReadiness(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })

	t.Run("ready", func(t *testing.T) {
		f := newFixture(t, ops.Deps{Checks: map[string]ops.Pinger{"postgres": ok, "redis": ok}})

		code, body := f.get(t, "/readyz", false)
		require.Equal(t, http.StatusOK, code)
		require.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`, body)
	})

	t.Run("redis down", func(t *testing.T) {
		f := newFixture(t, ops.Deps{Checks: map[string]ops.Pinger{
			"postgres": ok,
			"redis":    pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
		}})

		code, body := f.get(t, "/readyz", false)
		require.Equal(t, http.StatusServiceUnavailable, code)
		require.JSONEq(t, `{"status":"unavailable","checks":{"postgres":"ok","redis":"connection refused"}}`, body)
	})

	t.Run("check times out", func(t *testing.T) {
		f := newFixture(t, ops.Deps{Checks: map[string]ops.Pinger{
			"postgres": pingerFunc(func(ctx context.Context) error {
				<-ctx.Done()

				return ctx.Err()
			}),
		}})

		code, _ := f.get(t, "/readyz", false)
		require.Equal(t, http.StatusServiceUnavailable, code)
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "fanvote_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	f := newFixture(t, ops.Deps{Gatherer: reg})

	code, body := f.get(t, "/metrics", false)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "fanvote_test_total 1")
}

func TestPprofRequiresToken(t *testing.T) {
	f := newFixture(t, ops.Deps{})

	code, _ := f.get(t, "/debug/pprof/", false)
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = f.get(t, "/debug/pprof/", true)
	require.Equal(t, http.StatusOK, code)
}

func TestStandings(t *testing.T) {
	orgID := domain.NewOrganizationID()
	a, b := domain.NewPlayerOptionID(), domain.NewPlayerOptionID()
	fake := &fakeStandings{entries: []leaderboard.Entry{
		{PlayerOptionID: a, Votes: 12},
		{PlayerOptionID: b, Votes: 3},
	}}
	f := newFixture(t, ops.Deps{Standings: fake})

	path := "/v1/organizations/" + orgID.String() + "/standings"

	code, _ := f.get(t, path, false)
	require.Equal(t, http.StatusUnauthorized, code)

	code, body := f.get(t, path+"?limit=2", true)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, orgID, fake.gotOrg)
	require.Equal(t, 2, fake.gotLimit)
	require.JSONEq(t, `{"organization_id":"`+orgID.String()+`","standings":[`+
		`{"player_option_id":"`+a.String()+`","votes":12},`+
		`{"player_option_id":"`+b.String()+`","votes":3}]}`, body)

	code, _ = f.get(t, path, true)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 10, fake.gotLimit)
}

func TestStandings_BadRequests(t *testing.T) {
	fake := &fakeStandings{}
	f := newFixture(t, ops.Deps{Standings: fake})

	code, _ := f.get(t, "/v1/organizations/not-a-uuid/standings", true)
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = f.get(t, "/v1/organizations/"+domain.NewOrganizationID().String()+"/standings?limit=1000", true)
	require.Equal(t, http.StatusBadRequest, code)

	fake.err = errors.New("redis: connection pool timeout")
	code, body := f.get(t, "/v1/organizations/"+domain.NewOrganizationID().String()+"/standings", true)
	require.Equal(t, http.StatusInternalServerError, code)
	require.JSONEq(t, `{"error":"Internal Server Error"}`, body)
}

func TestNewHandler_InvalidKey(t *testing.T) {
	_, err := ops.NewHandler(ops.Deps{}, ops.Options{PublicKey: "garbage"})
	require.Error(t, err)
}
