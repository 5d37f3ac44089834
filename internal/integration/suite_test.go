//go:build integration

package integration

import (
	"context"
	"database/sql"
	"time"

	"github.com/startdusk/sqlcmd"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type Suite struct {
	suite.Suite

	driver string
	dsn    string

	db *sql.DB
}

func (s *Suite) SetupSuite() {
	db, err := sql.Open(s.driver, s.dsn)
	require.NoError(s.T(), err)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(s.T(), db.PingContext(ctx))
	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS user_account(
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		age INTEGER,
		is_admin BOOLEAN
	)`)
	require.NoError(s.T(), err)
	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS team_member(
		user_id VARCHAR(64) NOT NULL,
		team VARCHAR(64) NOT NULL
	)`)
	require.NoError(s.T(), err)
	s.db = db
}

func (s *Suite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// 每个测试结束之后清空数据
func (s *Suite) TearDownTest() {
	for _, tab := range []string{"user_account", "team_member"} {
		s.mustExec(sqlcmd.Delete(tab))
	}
}

func (s *Suite) mustExec(st *sqlcmd.Statement) {
	q, err := st.Build()
	require.NoError(s.T(), err)
	_, err = s.db.ExecContext(context.Background(), q.SQL)
	require.NoError(s.T(), err)
}

func (s *Suite) count(st *sqlcmd.Statement) int {
	q, err := st.Build()
	require.NoError(s.T(), err)
	var cnt int
	require.NoError(s.T(), s.db.QueryRowContext(context.Background(), q.SQL).Scan(&cnt))
	return cnt
}
