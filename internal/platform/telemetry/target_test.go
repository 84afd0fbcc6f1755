package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint string
		want     target
	}{
		{"http://otel-collector:4318", target{host: "otel-collector:4318", insecure: true}},
		{"https://collector.example.com", target{host: "collector.example.com"}},
		{"localhost:4318", target{host: "localhost:4318", insecure: true}},
	}
	for _, tt := range tests {
		got, err := parseTarget(tt.endpoint)
		require.NoError(t, err, tt.endpoint)
		assert.Equal(t, tt.want, got, tt.endpoint)
	}

	_, err := parseTarget("")
	assert.ErrorIs(t, err, errEmptyEndpoint)
}
