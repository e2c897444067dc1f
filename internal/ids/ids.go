// Package ids handles the canonical identifier form shared by every record.
package ids

import (
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
)

var ErrInvalid = httperr.ErrValidation("invalid_id")

func New() string {
	return uuid.NewString()
}

// Parse accepts any textual UUID form and returns it in canonical
// lower-case hyphenated form.
func Parse(s string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalid
	}
	return id.String(), nil
}
