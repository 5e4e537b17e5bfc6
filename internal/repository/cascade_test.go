package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementLog records every statement executed through the stub driver so
// the cascade tests can assert on the SQL gorm generates without a server.
type statementLog struct {
	mu    sync.Mutex
	stmts []string
}

func (l *statementLog) record(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stmts = append(l.stmts, query)
}

func (l *statementLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.stmts...)
}

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, driver.ErrBadConn
}

type stubConnector struct {
	log *statementLog
}

func (c stubConnector) Connect(context.Context) (driver.Conn, error) {
	return &stubConn{log: c.log}, nil
}

func (c stubConnector) Driver() driver.Driver {
	return stubDriver{}
}

type stubConn struct {
	log *statementLog
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return &stubStmt{conn: c, query: query}, nil
}

func (c *stubConn) Close() error {
	return nil
}

func (c *stubConn) Begin() (driver.Tx, error) {
	return stubTx{}, nil
}

func (c *stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return stubTx{}, nil
}

func (c *stubConn) Ping(context.Context) error {
	return nil
}

func (c *stubConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.log.record(query)
	return driver.RowsAffected(1), nil
}

func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.log.record(query)
	return emptyRows{}, nil
}

type stubStmt struct {
	conn  *stubConn
	query string
}

func (s *stubStmt) Close() error {
	return nil
}

func (s *stubStmt) NumInput() int {
	return -1
}

func (s *stubStmt) Exec([]driver.Value) (driver.Result, error) {
	s.conn.log.record(s.query)
	return driver.RowsAffected(1), nil
}

func (s *stubStmt) Query([]driver.Value) (driver.Rows, error) {
	s.conn.log.record(s.query)
	return emptyRows{}, nil
}

type stubTx struct{}

func (stubTx) Commit() error {
	return nil
}

func (stubTx) Rollback() error {
	return nil
}

type emptyRows struct{}

func (emptyRows) Columns() []string {
	return nil
}

func (emptyRows) Close() error {
	return nil
}

func (emptyRows) Next([]driver.Value) error {
	return io.EOF
}

func cascadeTestDB(t *testing.T) (*gorm.DB, *statementLog) {
	t.Helper()
	log := &statementLog{}
	sqlDB := sql.OpenDB(stubConnector{log: log})
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return db, log
}

// deleteIndex finds the position of the DELETE statement targeting a table.
// Matching on the statement prefix keeps subqueries over the same table
// from counting as deletes.
func deleteIndex(t *testing.T, stmts []string, table string) int {
	t.Helper()
	prefix := "DELETE FROM `" + table + "`"
	for i, stmt := range stmts {
		if strings.HasPrefix(stmt, prefix) {
			return i
		}
	}
	t.Fatalf("no DELETE statement for %s in %q", table, stmts)
	return -1
}

func TestCourseDeleteCascadeLeavesNoOrphans(t *testing.T) {
	db, log := cascadeTestDB(t)

	require.NoError(t, NewCourseRepository(db).DeleteCascade(9))

	stmts := log.all()
	questions := deleteIndex(t, stmts, "question_answers")
	materials := deleteIndex(t, stmts, "materials")
	lessons := deleteIndex(t, stmts, "lessons")
	enrollments := deleteIndex(t, stmts, "enrollments")
	courses := deleteIndex(t, stmts, "courses")

	// Dependents must go before the rows they hang off.
	assert.Less(t, questions, lessons)
	assert.Less(t, materials, lessons)
	assert.Less(t, lessons, courses)
	assert.Less(t, enrollments, courses)

	// Questions and materials reference lessons, so their deletes scope
	// through the course's lesson set.
	assert.Contains(t, stmts[questions], "lesson_id IN")
	assert.Contains(t, stmts[materials], "lesson_id IN")
}

func TestLessonDeleteCascadeLeavesNoOrphans(t *testing.T) {
	db, log := cascadeTestDB(t)

	require.NoError(t, NewLessonRepository(db).DeleteCascade(4))

	stmts := log.all()
	questions := deleteIndex(t, stmts, "question_answers")
	materials := deleteIndex(t, stmts, "materials")
	lessons := deleteIndex(t, stmts, "lessons")

	assert.Less(t, questions, lessons)
	assert.Less(t, materials, lessons)
}
