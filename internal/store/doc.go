// Package store provides SQLite-backed storage for named, ordered path sets.
//
// Paths are stored in their serialized text form (see package pathabs), so
// a TEXT column holds non-UTF-8 paths without loss and two entries are the
// same path exactly when their stored text is equal.
//
// # Ordering
//
//   - Entries within a set keep their insertion order (position column).
//   - Sets carry a logical sequence number, never a wall-clock timestamp.
//   - Listing is ORDER BY name COLLATE BINARY for stable output.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Entries are deleted with their set
package store
