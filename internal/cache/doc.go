// Package cache implements a single-owner, in-memory LRU key–value cache.
//
// Goals for this package:
//   - Make the core data structures explicit (map index + doubly linked recency list)
//   - Provide O(1) Get/Put via the map and handle-linked list nodes
//   - Keep list nodes in a flat arena addressed by integer handles, with
//     permanent head/tail sentinels and a free list for slot reuse
//   - Treat a miss as a normal (V, false) result; only construction can fail
//
// The cache does no locking and starts no goroutines. Wrap it in a mutex if
// it must be shared.
package cache
