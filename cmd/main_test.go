package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "none", args: []string{"serve"}, want: nil},
		{name: "short", args: []string{"-c", "prod.yml", "serve"}, want: []string{"-c", "prod.yml"}},
		{name: "long after subcommand", args: []string{"migrate", "--config", "x.yml"}, want: []string{"-c", "x.yml"}},
		{name: "inline", args: []string{"codes", "generate", "--config=y.yml"}, want: []string{"-c", "y.yml"}},
		{name: "short inline", args: []string{"-c=z.yml"}, want: []string{"-c", "z.yml"}},
		{name: "missing value", args: []string{"serve", "-c"}, want: nil},
		{name: "empty inline", args: []string{"--config="}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, configArgs(tt.args))
		})
	}
}
