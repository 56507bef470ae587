package password_test

import (
	"strings"
	"testing"
	"workation/shared/password"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		expectErr bool
	}{
		{
			name:      "valid password",
			password:  "workation2025!",
			expectErr: false,
		},
		{
			name:      "empty password",
			password:  "",
			expectErr: true,
		},
		{
			name:      "short password",
			password:  "abc",
			expectErr: false,
		},
		{
			name:      "over bcrypt length limit",
			password:  strings.Repeat("a", 100),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hash)
				assert.NotEqual(t, tt.password, hash)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("hotelaround2025")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		expected error
	}{
		{
			name:     "matching password",
			password: "hotelaround2025",
			hash:     hash,
			expected: nil,
		},
		{
			name:     "wrong password",
			password: "not-the-secret",
			hash:     hash,
			expected: password.ErrInvalidPassword,
		},
		{
			name:     "empty password",
			password: "",
			hash:     hash,
			expected: password.ErrInvalidPassword,
		},
		{
			name:     "empty hash",
			password: "hotelaround2025",
			hash:     "",
			expected: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}
