package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/XavierBriggs/Janus/pkg/models"
)

const keyPrefix = "janus"

// Signature identifies a logical request: operation, league and every
// non-default parameter. Parameter order never affects the signature.
type Signature struct {
	Operation string
	League    models.LeagueID

	canonical string
}

// NewSignature canonicalises params: keys are sorted, values of a multi-valued
// parameter are sorted and de-duplicated, empty values and parameters are dropped.
func NewSignature(operation string, league models.LeagueID, params map[string][]string) Signature {
	canon := url.Values{}
	for name, values := range params {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		seen := make(map[string]bool, len(values))
		kept := make([]string, 0, len(values))
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			kept = append(kept, v)
		}
		if len(kept) == 0 {
			continue
		}

		sort.Strings(kept)
		canon[name] = kept
	}

	return Signature{
		Operation: operation,
		League:    league,
		// url.Values.Encode sorts by key and escapes delimiters
		canonical: fmt.Sprintf("%s|%s|%s", operation, league, canon.Encode()),
	}
}

// String returns the canonical text of the signature
func (s Signature) String() string {
	return s.canonical
}

// Key returns the store key for the signature.
// Format: janus:{operation}:{league}:{xxhash64 of canonical text}
func (s Signature) Key() string {
	return fmt.Sprintf("%s:%s:%s:%016x", keyPrefix, s.Operation, s.League, xxhash.Sum64String(s.canonical))
}
