// Package dedupe removes postings already known by URL or by the composite
// title+company key.
package dedupe

import (
	"strings"

	"github.com/Diogo1912/jobbi/pkg/models"
)

// Identity is a duplicate key: either a raw URL or the composite
// lower(title):::lower(company) pair. Different sources report the same
// posting under different tracking URLs, so both rules are enforced. The
// composite key knowingly accepts collisions between same-titled roles at the
// same company.
type Identity string

const compositeSep = ":::"

// CompositeKey builds the title+company identity. Case folding only; no
// whitespace normalization.
func CompositeKey(title, company string) Identity {
	return Identity(strings.ToLower(title) + compositeSep + strings.ToLower(company))
}

// Identities returns the duplicate keys a job contributes: its URL (when set)
// and its composite key.
func Identities(job models.RawJob) []Identity {
	ids := make([]Identity, 0, 2)
	if job.URL != "" {
		ids = append(ids, Identity(job.URL))
	}
	ids = append(ids, CompositeKey(job.Title, job.Company))
	return ids
}

// Dedupe drops every candidate whose URL or composite key matches an existing
// identity or an identity accepted earlier in the same batch. Input order is
// preserved; the first occurrence of a duplicate wins.
func Dedupe(candidates []models.RawJob, existing []Identity) []models.RawJob {
	seen := make(map[Identity]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}

	kept := make([]models.RawJob, 0, len(candidates))
	for _, job := range candidates {
		ids := Identities(job)

		dup := false
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		for _, id := range ids {
			seen[id] = struct{}{}
		}
		kept = append(kept, job)
	}
	return kept
}
