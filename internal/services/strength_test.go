package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		pw    string
		score int
		label string
	}{
		{"", 0, "Empty"},
		{"abc", 0, "Very weak"},
		{"abcdefgh", 1, "Weak"},
		{"Abcdefgh", 2, "Medium"},
		{"Abcdefg1", 3, "Strong"},
		{"Abcdef1!", 4, "Very strong"},
		{"пароль12", 3, "Strong"},
	}
	for _, tc := range tests {
		t.Run(tc.pw, func(t *testing.T) {
			got := PasswordStrength(tc.pw)
			assert.Equal(t, tc.score, got.Score)
			assert.Equal(t, tc.label, got.Label)
		})
	}
}
