package cmd

import "time"

// Config carries the runtime settings loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// NotFoundOnEmptyCustomerOrders preserves the legacy behavior where a
	// customer with no orders is reported as 404 instead of an empty list.
	NotFoundOnEmptyCustomerOrders bool

	// StaleOrderSchedule is the cron schedule of the stale-order sweep,
	// e.g. "@every 5m".
	StaleOrderSchedule string

	// StaleOrderTTL is how long an order may stay Pending before the
	// sweep cancels it.
	StaleOrderTTL time.Duration
}
