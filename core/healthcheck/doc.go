// Package healthcheck provides liveness and readiness HTTP handlers.
//
// Liveness reports only that the process runs; Readiness additionally runs
// dependency probes, such as the Healthcheck functions of the database
// integrations, and returns 503 on the first failure.
package healthcheck
