// Package aggregator fans out over all source connectors and merges whatever
// each one returns.
package aggregator

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Diogo1912/jobbi/internal/source"
	"github.com/Diogo1912/jobbi/pkg/models"
)

// DefaultTimeout bounds each connector call so a hung source cannot block the
// whole run.
const DefaultTimeout = 15 * time.Second

// FetchAll invokes every connector concurrently and concatenates their
// results. A connector that errors or times out contributes an empty list;
// one failure never affects the others. Results keep a stable order within
// each source; no ordering is guaranteed across sources beyond connector
// order.
func FetchAll(ctx context.Context, connectors []source.Connector, timeout time.Duration) []models.RawJob {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	results := make([][]models.RawJob, len(connectors))
	var wg sync.WaitGroup

	for i, conn := range connectors {
		wg.Add(1)
		go func(i int, conn source.Connector) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			jobs, err := conn.Fetch(callCtx)
			if err != nil {
				log.Printf("[aggregator] %s failed, continuing with empty result: %v", conn.Name(), err)
				return
			}
			results[i] = jobs
		}(i, conn)
	}
	wg.Wait()

	var all []models.RawJob
	counts := make([]string, 0, len(connectors))
	for i, conn := range connectors {
		counts = append(counts, fmt.Sprintf("%s=%d", conn.Name(), len(results[i])))
		all = append(all, results[i]...)
	}
	log.Printf("[aggregator] fetched jobs: %s", strings.Join(counts, ", "))

	return all
}

// Shuffle randomizes job order in place. Cosmetic: ranking re-sorts anyway.
func Shuffle(jobs []models.RawJob) {
	rand.Shuffle(len(jobs), func(i, j int) {
		jobs[i], jobs[j] = jobs[j], jobs[i]
	})
}
