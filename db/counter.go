package db

import (
	"github.com/orsinium-labs/enum"
	lib "modernc.org/sqlite/lib"
)

// Counter identifies one of the per-statement status counters. Each
// member carries its native status code.
//
// https://www.sqlite.org/c3ref/c_stmtstatus_counter.html
type Counter = enum.Member[int32]

var (
	// CounterFullScanStep counts full table scan steps.
	CounterFullScanStep = Counter{Value: lib.SQLITE_STMTSTATUS_FULLSCAN_STEP}
	// CounterSort counts sort operations.
	CounterSort = Counter{Value: lib.SQLITE_STMTSTATUS_SORT}
	// CounterAutoIndex counts rows inserted into transient automatic indexes.
	CounterAutoIndex = Counter{Value: lib.SQLITE_STMTSTATUS_AUTOINDEX}
	// CounterVMStep counts virtual machine steps.
	CounterVMStep = Counter{Value: lib.SQLITE_STMTSTATUS_VM_STEP}
	// CounterReprepare counts automatic re-preparations after schema change.
	CounterReprepare = Counter{Value: lib.SQLITE_STMTSTATUS_REPREPARE}
	// CounterRun counts complete runs: one or more steps followed by a reset.
	CounterRun = Counter{Value: lib.SQLITE_STMTSTATUS_RUN}
	// CounterMemUsed approximates heap memory held by the statement.
	CounterMemUsed = Counter{Value: lib.SQLITE_STMTSTATUS_MEMUSED}

	// Counters enumerates every statement counter.
	Counters = enum.New(
		CounterFullScanStep,
		CounterSort,
		CounterAutoIndex,
		CounterVMStep,
		CounterReprepare,
		CounterRun,
		CounterMemUsed,
	)
)

// Status returns the current value of the named counter for this
// statement. If reset is true the counter is zeroed as a side effect of
// the same call; the engine ignores the flag for CounterMemUsed. The
// native call cannot fail for a valid statement handle, so there is no
// error path.
//
// https://www.sqlite.org/c3ref/stmt_status.html
func (s *Stmt) Status(counter Counter, reset bool) int {
	flag := int32(0)
	if reset {
		flag = 1
	}
	return int(lib.Xsqlite3_stmt_status(s.conn.tls, s.stmt, counter.Value, flag))
}
