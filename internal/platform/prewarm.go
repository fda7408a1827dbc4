package platform

import (
	"git.uuxo.net/uuxo/mime-resolver/internal/metrics"
	"git.uuxo.net/uuxo/mime-resolver/internal/workers"
)

// Prewarm queues a cache-warming lookup for every given content type so the
// first client requests never pay the registry I/O cost.
func Prewarm(r *Registry, pool *workers.Pool, contentTypes []string) {
	for _, ct := range contentTypes {
		ct := ct
		pool.Submit(workers.Task{Execute: func() error {
			r.ExtensionsForType(ct)
			metrics.PrewarmTasksTotal.Inc()
			return nil
		}})
	}
	log.Infof("Platform registry: queued %d pre-warm lookups", len(contentTypes))
}
