package student

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraft(t *testing.T) {
	d := Draft{Name: "  Ana Lima ", Email: " Ana.Lima@Uni.EDU "}.Normalize()
	assert.Equal(t, "Ana Lima", d.Name)
	assert.Equal(t, "ana.lima@uni.edu", d.Email)
	assert.Empty(t, d.Validate())

	bad := Draft{Name: strings.Repeat("a", 201), Email: "nope"}.Normalize()
	assert.Equal(t, []string{
		"name cannot exceed 200 characters",
		"email is not a valid address",
	}, bad.Validate())
}
