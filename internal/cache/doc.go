// Package cache provides an in-memory TTL cache used by the service layer to
// keep recent read results.
package cache
