// Package engine coordinates the parallel primality scan.
//
// The threaded runner spawns N workers sharing a single mutex-protected work
// cursor. Each worker loops claim → test → record until the cursor is
// exhausted: the claim is the only contended region (O(1) under the lock),
// the primality test runs fully in parallel, and the record step needs no
// locking because the cursor hands out each candidate exactly once, so store
// indices are disjoint across workers.
//
// The sequential runner produces a bit-for-bit identical result store without
// any synchronization and is used when a single worker is requested.
package engine
