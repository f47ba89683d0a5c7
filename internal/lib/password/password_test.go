package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	Cost = bcrypt.MinCost

	tests := []struct {
		name     string
		password string
		attempt  string
		wantErr  bool
	}{
		{name: "matching password", password: "123456", attempt: "123456"},
		{name: "wrong password", password: "123456", attempt: "654321", wantErr: true},
		{name: "special chars", password: "p@ss w0rd!#", attempt: "p@ss w0rd!#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			err = Compare(hash, tt.attempt)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCompare_EmptyHash(t *testing.T) {
	assert.Error(t, Compare("", "anything"))
}

func TestIsStrong(t *testing.T) {
	assert.True(t, IsStrong("123456"))
	assert.False(t, IsStrong("12345"))
	assert.False(t, IsStrong(" 123456"))
}
