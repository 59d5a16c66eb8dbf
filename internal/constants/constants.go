package constants

import "time"

const (
	// AggregateUpdateMaxRetries bounds the optimistic-locking loop on
	// property income/expenses writes.
	AggregateUpdateMaxRetries = 3

	ReconcileJobTimeout      = 2 * time.Minute
	DefaultReconcileCronSpec = "0 3 * * *"
)
