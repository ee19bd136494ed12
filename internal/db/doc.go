// Package db is the run-history store for Quadshift.
//
// Every cipher invocation can be recorded as a model.Run. The store is
// backed by Bun over SQLite (default, pure Go), PostgreSQL or MySQL; the
// schema lives in embedded per-engine SQL migrations applied on open.
//
// Package-level helpers (`RecordRun`, `ListRuns`, ...) operate on the store
// installed by `InitDB`/`New`. Tests should use
// `file:<name>?mode=memory&cache=shared` DSNs for isolation.
package db
