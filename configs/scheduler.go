package configs

import "time"

type Scheduler struct {
	// ReconcileInterval bounds how stale a poll's cached active flag
	// can be relative to its configured window.
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" envDefault:"1m"`
}
