package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const (
	JobsListCachePattern = "jobs:list:*"

	jobsListPrefix   = "jobs:list:"
	jobsDetailPrefix = "jobs:detail:"
)

// JobsListCacheKey keys a listing by its trimmed search term. Case is kept: the
// tech stack match is exact.
func JobsListCacheKey(search string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(search)))
	return jobsListPrefix + hex.EncodeToString(sum[:])
}

func JobDetailCacheKey(jobID uuid.UUID) string {
	return jobsDetailPrefix + jobID.String()
}
