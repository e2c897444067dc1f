package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailSyntaxValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@uni.edu", true},
		{"first.last+tag@mail.uni.edu", true},
		{"", false},
		{"ana", false},
		{"ana@localhost", false},
		{"Ana <ana@uni.edu>", false},
		{"ana@@uni.edu", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEmailSyntaxValid(tt.email), tt.email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@uni.edu", NormalizeEmail("  ANA@Uni.edu "))
}
