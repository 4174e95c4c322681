package postgres_test

import (
	"fanvote/pkg/storage/postgres"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptions_DSN(t *testing.T) {
	tests := []struct {
		name    string
		options postgres.Options
		appName string
		sslMode string
	}{
		{
			name:    "defaults",
			options: postgres.Options{Username: "fan", Password: "p@ss word/1", Host: "db", Port: 5432, Database: "fanvote"},
			appName: "fanvote",
		},
		{
			name: "explicit",
			options: postgres.Options{
				Username: "fan", Password: "x", Host: "10.0.0.1", Port: 6543, Database: "votes",
				SslMode: "require", ApplicationName: "fanvote-migrate",
			},
			appName: "fanvote-migrate",
			sslMode: "require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.options.DSN())
			require.NoError(t, err)

			require.Equal(t, "postgres", u.Scheme)
			require.Equal(t, tt.options.Username, u.User.Username())
			password, _ := u.User.Password()
			require.Equal(t, tt.options.Password, password)
			require.Equal(t, tt.options.Host, u.Hostname())
			require.Equal(t, "/"+tt.options.Database, u.Path)
			require.Equal(t, tt.appName, u.Query().Get("application_name"))
			require.Equal(t, tt.sslMode, u.Query().Get("sslmode"))
		})
	}
}
