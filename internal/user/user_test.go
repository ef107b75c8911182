package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCurrentUsername(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		want  string
	}{
		{name: "override wins", owner: "scorekeeper", want: "scorekeeper"},
		{name: "override is trimmed", owner: "  bob  ", want: "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(OwnerEnv, tt.owner)
			assert.Equal(t, tt.want, GetCurrentUsername())
		})
	}
}

func TestGetCurrentUsernameFallback(t *testing.T) {
	t.Setenv(OwnerEnv, "")

	// Either the OS account, USER, or "unknown"; never empty
	assert.NotEmpty(t, GetCurrentUsername())
}
