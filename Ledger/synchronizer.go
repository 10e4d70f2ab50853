package Ledger

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"MissionControl/Models"
)

// SyncStatus reflects the health of the remote uplink.
type SyncStatus string

const (
	SyncConnecting SyncStatus = "CONNECTING"
	SyncConnected  SyncStatus = "CONNECTED"
	SyncOffline    SyncStatus = "OFFLINE"
)

// Filter wildcards accepted by View.
const (
	FilterAll       = "All"
	FilterAllAgents = "All Agents"
)

// Sort keys accepted by View.
const (
	SortByDate   = "date"
	SortByStatus = "status"
	SortByName   = "name"
)

// Synchronizer owns the canonical in-memory assignment list and keeps it
// mirrored in the local cache and, opportunistically, the remote store.
// Writes are local-first: memory and cache are updated before any remote
// confirmation, and a failed remote write only flips the sync status. There
// is no retry queue; the periodic refresh is the only reconciliation path.
type Synchronizer struct {
	mu      sync.Mutex
	records []Models.Assignment
	status  SyncStatus
	syncing bool

	remote RemoteStore
	cache  LocalCache

	remoteTimeout time.Duration
	now           func() time.Time
	inflight      sync.WaitGroup
}

func NewSynchronizer(remote RemoteStore, cache LocalCache) *Synchronizer {
	return &Synchronizer{
		status:        SyncConnecting,
		remote:        remote,
		cache:         cache,
		remoteTimeout: 10 * time.Second,
		// Timestamps are stamped in UTC so records written by independent
		// instances order consistently.
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Initialize makes a single bounded attempt to prepare the remote schema and
// pull the ledger. On any failure it falls back to the cached snapshot and
// goes offline; it never blocks past the remote timeout.
func (s *Synchronizer) Initialize(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	defer cancel()

	if err := s.remote.EnsureSchema(ctx); err != nil {
		if err != ErrNotConfigured {
			log.Printf("ledger: remote schema init failed: %v", err)
		}
		s.mu.Lock()
		s.status = SyncOffline
		s.records = decodeRecords(s.cache.Get(LedgerKey))
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.status = SyncConnected
	s.mu.Unlock()
	s.Refresh(ctx, false)
}

// Refresh reloads the ledger: cache snapshot first, then the remote list if
// reachable. A non-empty remote result replaces memory and overwrites the
// cache; an empty or failed fetch retains whatever snapshot is already held.
// When silent is false the syncing flag is raised for the duration.
func (s *Synchronizer) Refresh(ctx context.Context, silent bool) {
	if !silent {
		s.mu.Lock()
		s.syncing = true
		s.mu.Unlock()
		defer func() {
			s.mu.Lock()
			s.syncing = false
			s.mu.Unlock()
		}()
	}

	s.mu.Lock()
	if len(s.records) == 0 {
		if cached := decodeRecords(s.cache.Get(LedgerKey)); len(cached) > 0 {
			s.records = cached
		}
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	defer cancel()

	fetched, err := s.remote.FetchAll(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if err != ErrNotConfigured {
			log.Printf("ledger: remote fetch failed: %v", err)
		}
		s.status = SyncOffline
		return
	}
	s.status = SyncConnected
	if len(fetched) > 0 {
		s.records = fetched
		s.writeCacheLocked()
	}
}

// Upsert applies an admin create-or-replace. The in-memory list and local
// cache are updated immediately; the remote write happens in the background
// and a failure is absorbed into the sync status without rollback. Non-admin
// callers are silently rejected.
func (s *Synchronizer) Upsert(a Models.Assignment, role string) {
	if role != Models.RoleAdmin {
		return
	}

	s.mu.Lock()
	replaced := false
	for i := range s.records {
		if s.records[i].TaskID == a.TaskID {
			s.records[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		s.records = append([]Models.Assignment{a}, s.records...)
	}
	s.writeCacheLocked()
	s.mu.Unlock()

	s.persistAsync(a)
}

// AppendStatusUpdate appends a log entry to the record's history, moves the
// record to the new status and bumps lastUpdated, then runs the optimistic
// write protocol for that record. Unknown task ids are a silent no-op. Any
// role may append; the author label is derived from the caller's role.
func (s *Synchronizer) AppendStatusUpdate(taskID, newStatus, comment, role string) {
	now := s.now()

	s.mu.Lock()
	idx := -1
	for i := range s.records {
		if s.records[i].TaskID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	entry := Models.AssignmentUpdate{
		ID:        Models.NewUpdateID(now),
		Timestamp: now.Format(time.RFC3339),
		Status:    newStatus,
		Text:      comment,
		Author:    Models.AuthorFor(role),
	}
	s.records[idx].Updates = append(s.records[idx].Updates, entry)
	s.records[idx].Status = newStatus
	s.records[idx].LastUpdated = now.Format(time.RFC3339)
	updated := s.records[idx]
	s.writeCacheLocked()
	s.mu.Unlock()

	s.persistAsync(updated)
}

// Delete removes a record. Only an admin with an explicit confirmation gets
// through; everything else is a silent no-op. Remote failure flips the sync
// status but never restores the record.
func (s *Synchronizer) Delete(taskID, role string, confirmed bool) {
	if role != Models.RoleAdmin || !confirmed {
		return
	}

	s.mu.Lock()
	found := false
	next := s.records[:0]
	for _, a := range s.records {
		if a.TaskID == taskID {
			found = true
			continue
		}
		next = append(next, a)
	}
	s.records = next
	if found {
		s.writeCacheLocked()
	}
	s.mu.Unlock()

	if !found {
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.remoteTimeout)
		defer cancel()
		s.settleRemote(s.remote.Delete(ctx, taskID))
	}()
}

// Get returns the record with the given task id, if present.
func (s *Synchronizer) Get(taskID string) (Models.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.records {
		if a.TaskID == taskID {
			return a, true
		}
	}
	return Models.Assignment{}, false
}

// View is a pure projection over the current records: exact-match status and
// assignee filters with "All"/"All Agents" wildcards, a case-insensitive
// substring search over title or assignee, and one of three sort orders.
// It never mutates the underlying list and is safe to recompute freely.
func (s *Synchronizer) View(filterStatus, filterAssignee, searchText, sortKey string) []Models.Assignment {
	s.mu.Lock()
	snapshot := make([]Models.Assignment, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	needle := strings.ToLower(searchText)
	out := snapshot[:0]
	for _, a := range snapshot {
		if filterStatus != "" && filterStatus != FilterAll && a.Status != filterStatus {
			continue
		}
		if filterAssignee != "" && filterAssignee != FilterAllAgents && filterAssignee != FilterAll && a.AssignedTo != filterAssignee {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.TaskTitle), needle) &&
			!strings.Contains(strings.ToLower(a.AssignedTo), needle) {
			continue
		}
		out = append(out, a)
	}

	switch sortKey {
	case SortByStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].AssignedTo < out[j].AssignedTo })
	default:
		// Newest first. Stamps are parsed rather than compared as text so
		// records written with different UTC offsets still order
		// chronologically.
		sort.SliceStable(out, func(i, j int) bool {
			ti, erri := time.Parse(time.RFC3339, out[i].LastUpdated)
			tj, errj := time.Parse(time.RFC3339, out[j].LastUpdated)
			if erri != nil || errj != nil {
				return out[i].LastUpdated > out[j].LastUpdated
			}
			return ti.After(tj)
		})
	}
	return out
}

// LedgerStats are the HUD counters shown above the board.
type LedgerStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
	Blocked   int `json:"blocked"`
}

func (s *Synchronizer) Stats() LedgerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := LedgerStats{Total: len(s.records)}
	for _, a := range s.records {
		switch a.Status {
		case Models.StatusCompleted:
			stats.Completed++
		case Models.StatusPending, Models.StatusInProgress:
			stats.Active++
		case Models.StatusBlocked:
			stats.Blocked++
		}
	}
	return stats
}

// Status reports the uplink state, whether a non-silent refresh is running,
// and the current record count.
func (s *Synchronizer) Status() (SyncStatus, bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.syncing, len(s.records)
}

// Wait blocks until all in-flight remote writes have settled. Used on
// shutdown and in tests; the serving path never calls it.
func (s *Synchronizer) Wait() {
	s.inflight.Wait()
}

func (s *Synchronizer) persistAsync(a Models.Assignment) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.remoteTimeout)
		defer cancel()
		s.settleRemote(s.remote.Upsert(ctx, a))
	}()
}

func (s *Synchronizer) settleRemote(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if err != ErrNotConfigured {
			log.Printf("ledger: remote write failed: %v", err)
		}
		s.status = SyncOffline
		return
	}
	s.status = SyncConnected
}

// writeCacheLocked mirrors the full record list into the local cache. The
// caller must hold s.mu.
func (s *Synchronizer) writeCacheLocked() {
	if blob := encodeRecords(s.records); blob != nil {
		if err := s.cache.Set(LedgerKey, blob); err != nil {
			log.Printf("ledger cache: write failed: %v", err)
		}
	}
}
