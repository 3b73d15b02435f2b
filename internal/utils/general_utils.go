package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"eventPlanner/internal/errs"
)

func ParseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.ErrInvalidParams
	}
	return uint(id), nil
}

// NewShareToken returns an unguessable token for read-only event links.
func NewShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
