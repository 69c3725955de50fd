// Package queries contains read operations for retrieving shipment state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers bypass the domain aggregate and read optimized models straight
// from the database; aggregations (customer rollup, dashboard counters) are
// stateless projections recomputed on demand.
package queries
