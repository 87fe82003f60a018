package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestConn opens an in-memory database that is closed when the test
// finishes.
func openTestConn(t *testing.T) *Conn {
	t.Helper()
	c, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, c.Close())
	})
	return c
}

func TestExecAndChanges(t *testing.T) {
	c := openTestConn(t)

	require.NoError(t, c.Exec("CREATE TABLE t(x INTEGER)"))
	require.NoError(t, c.Exec("INSERT INTO t(x) VALUES (1),(2),(3)"))
	require.Equal(t, 3, c.Changes())
	require.Equal(t, int64(3), c.LastInsertRowID())

	require.NoError(t, c.Exec("DELETE FROM t WHERE x > 1"))
	require.Equal(t, 2, c.Changes())
}

func TestPrepareTrailingBytes(t *testing.T) {
	c := openTestConn(t)

	_, err := c.Prepare("SELECT 1; SELECT 2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "trailing bytes")
}

func TestPrepareSyntaxError(t *testing.T) {
	c := openTestConn(t)

	_, err := c.Prepare("SELEC 1")
	require.Error(t, err)
}

func TestPrepareEmptyStatement(t *testing.T) {
	c := openTestConn(t)

	_, err := c.Prepare("-- nothing here")
	require.Error(t, err)
}

func TestStmtIntrospection(t *testing.T) {
	c := openTestConn(t)
	require.NoError(t, c.Exec("CREATE TABLE t(a INTEGER, b TEXT)"))

	stmt, err := c.Prepare("SELECT a, b FROM t WHERE a = ?1 AND b = ?2")
	require.NoError(t, err)
	defer stmt.Finalize()

	require.Equal(t, 2, stmt.ColumnCount())
	require.Equal(t, "a", stmt.ColumnName(0))
	require.Equal(t, "b", stmt.ColumnName(1))
	require.Equal(t, 2, stmt.BindParameterCount())
	require.Equal(t, 0, stmt.DataCount()) // no row yet
}

func TestCloseWithLiveStatement(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)

	stmt, err := c.Prepare("SELECT 1")
	require.NoError(t, err)

	// A live statement keeps the connection open.
	require.Error(t, c.Close())

	require.NoError(t, stmt.Finalize())
	require.NoError(t, c.Close())
}
