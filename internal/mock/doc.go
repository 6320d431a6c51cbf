// Package mock provides mock implementations for testing file system, hash, and I/O operations.
// It enables isolated testing by simulating various scenarios including error conditions.
package mock
