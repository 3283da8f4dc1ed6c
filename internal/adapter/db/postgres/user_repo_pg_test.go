package postgres

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"users-service/internal/domain/user"
	pkgerrors "users-service/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	path := filepath.Join(t.TempDir(), "users.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	err = EnsureSchema(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestUserRepoPG_CreateThenFindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "Test User", "test@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Test User", created.Name)
	assert.Equal(t, "test@example.com", created.Email)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, users, *created)
}

func TestUserRepoPG_FindAll_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))

	users, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepoPG_Create_PermissiveInput(t *testing.T) {
	tests := []struct {
		name  string
		uname string
		email string
	}{
		{name: "empty email", uname: "Jane Doe", email: ""},
		{name: "empty name and email", uname: "", email: ""},
		{name: "accented characters", uname: "José María", email: "josé@example.com"},
		{name: "multi-byte characters", uname: "山田 太郎", email: "taro@例え.jp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewUserRepoPG(db, zaptest.NewLogger(t))
			ctx := context.Background()

			created, err := repo.Create(ctx, tt.uname, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.uname, created.Name)
			assert.Equal(t, tt.email, created.Email)

			users, err := repo.FindAll(ctx)
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, *created, users[0])
		})
	}
}

func TestUserRepoPG_DuplicatesAllowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, "John Doe", "john@example.com")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "John Doe", "john@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []user.User{*first, *second}, users)
}

func TestUserRepoPG_ConcurrentCreates(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// sqlite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, "Concurrent", "c@example.com")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, n)

	ids := make(map[string]struct{}, n)
	for _, u := range users {
		ids[u.ID] = struct{}{}
	}
	assert.Len(t, ids, n)
}

func TestUserRepoPG_StorageErrors(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	created, err := repo.Create(ctx, "John Doe", "john@example.com")
	assert.Nil(t, created)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsStorageError(err))

	users, err := repo.FindAll(ctx)
	assert.Nil(t, users)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsStorageError(err))
}
