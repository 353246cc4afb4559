// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

/*
Package state is the authoritative in-memory store for live events.

Each event (a debate stream or a piece of commented content) owns its vote
tallies, a bounded vote history and an ordered comment list. The Store is the
only writer.

# Locking

The Store holds a map of events behind a sync.RWMutex and every event has its
own sync.Mutex:

  - Mutations take the map read lock and then the event lock, so writes to
    different events never wait on each other.
  - Snapshot reads take the map read lock only long enough to find the event
    and then load an immutable *AggregateSnapshot through an atomic pointer.
    They never contend with the event lock.
  - Replace takes the map write lock, which waits for in-flight mutations and
    swaps in a whole new table. Readers see either the old table or the new
    one, never a mix.

# Change notifications

After a mutation commits, and while the event lock is still held, the Store
hands the change to its ChangeSink. The sink must not block (the broadcast hub
only appends to a per-event mailbox), and calling it under the lock makes the
order of notifications for one event equal to the commit order.

# Known limitations

LikeComment is not deduplicated per viewer: every call adds one like. Whether
repeated likes from the same viewer should be capped is a policy decision for
the caller.
*/
package state
