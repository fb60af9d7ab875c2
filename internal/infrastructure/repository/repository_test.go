package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type statement struct {
	sql  string
	vars []interface{}
}

// newDryRunDB builds statements without a server and records every query and
// update it would have sent
func newDryRunDB(t *testing.T) (*gorm.DB, *[]statement) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var captured []statement
	record := func(tx *gorm.DB) {
		captured = append(captured, statement{sql: tx.Statement.SQL.String(), vars: tx.Statement.Vars})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:record_update", record))
	return db, &captured
}

func TestProfileRepository_BumpVersionIsConditional(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewProfileRepository(db)
	profileID := uuid.New()

	_, err := repo.BumpVersion(context.Background(), profileID, 7)
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.sql, `UPDATE "user_profiles" SET "version"=version + 1`)
	assert.Contains(t, stmt.sql, "WHERE id = $1 AND version = $2")
	assert.Equal(t, []interface{}{profileID, 7}, stmt.vars)
}

func TestDoctorRepository_FindByIdentityIgnoresCaseAndSpaces(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewDoctorRepository(db)

	_, err := repo.FindByIdentity(context.Background(), "userA", "  Dr. A ", " MD")
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.sql, "LOWER(TRIM(name)) = LOWER($2) AND LOWER(TRIM(degree)) = LOWER($3)")
	assert.Equal(t, []interface{}{"userA", "Dr. A", "MD"}, stmt.vars)
}

func TestTxManager_JoinsOuterTransaction(t *testing.T) {
	base, baseCaptured := newDryRunDB(t)
	outer, outerCaptured := newDryRunDB(t)
	manager := NewTxManager(base)
	repo := NewDoctorRepository(base)

	ctx := context.WithValue(context.Background(), TxKey, outer)
	calls := 0
	err := manager.WithinTransaction(ctx, func(inner context.Context) error {
		calls++
		assert.Same(t, outer, inner.Value(TxKey))
		_, err := repo.FindByIdentity(inner, "userA", "Dr. A", "MD")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Len(t, *outerCaptured, 1)
	assert.Empty(t, *baseCaptured)
}

func TestConn_WithoutTransactionUsesDB(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewDoctorRepository(db)

	_, err := repo.FindByIdentity(context.Background(), "userA", "Dr. A", "MD")
	require.NoError(t, err)
	assert.Len(t, *captured, 1)
}
