package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a collision-resistant random identifier, falling back to
// a millisecond timestamp if the random source fails. Good enough for a
// single-user local tool, not for concurrent writers.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return id.String()
}
