package session

import "fmt"

// #region affinity-policy
// AffinityPolicy decides what happens when a heart amount cannot be read.
type AffinityPolicy string

const (
	// AffinitySkip drops the grant and returns to the name prompt.
	AffinitySkip AffinityPolicy = "skip"
	// AffinityRetry asks for the amount again until it parses.
	AffinityRetry AffinityPolicy = "retry"
)

// ParseAffinityPolicy validates a policy name. Empty means AffinitySkip.
func ParseAffinityPolicy(s string) (AffinityPolicy, error) {
	switch AffinityPolicy(s) {
	case "", AffinitySkip:
		return AffinitySkip, nil
	case AffinityRetry:
		return AffinityRetry, nil
	}
	return "", fmt.Errorf("unknown affinity policy %q (want %q or %q)", s, AffinitySkip, AffinityRetry)
}

// #endregion affinity-policy
