package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest/internal/auth"
	"github.com/tasknest/tasknest/internal/models"
	"github.com/tasknest/tasknest/internal/storage"
	"github.com/tasknest/tasknest/internal/storage/sqlite"
)

func newTaskService(t *testing.T) (*TaskService, storage.Store) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewTaskService(store), store
}

func seedUser(t *testing.T, store storage.Store, email, username string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Username: username, PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func TestAddTask(t *testing.T) {
	ctx := context.Background()
	svc, store := newTaskService(t)
	owner := seedUser(t, store, "alice@example.com", "alice")

	t.Run("creates a task for the resolved owner", func(t *testing.T) {
		task, err := svc.Add(ctx, "Buy milk", "2%", owner.Email)
		require.NoError(t, err)

		assert.NotEmpty(t, task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, "2%", task.Body)
		assert.Equal(t, owner.ID, task.OwnerID)

		_, tasks, err := svc.List(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, task.ID, tasks[0].ID)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		for _, tc := range []struct{ title, body, email string }{
			{"", "body", owner.Email},
			{"title", "", owner.Email},
			{"title", "body", ""},
		} {
			_, err := svc.Add(ctx, tc.title, tc.body, tc.email)
			assert.ErrorIs(t, err, ErrMissingFields)
		}
	})

	t.Run("rejects unknown owner email", func(t *testing.T) {
		_, err := svc.Add(ctx, "title", "body", "nobody@example.com")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	svc, store := newTaskService(t)
	owner := seedUser(t, store, "bob@example.com", "bob")

	t.Run("returns tasks in creation order", func(t *testing.T) {
		for _, title := range []string{"first", "second", "third"} {
			_, err := svc.Add(ctx, title, "body", owner.Email)
			require.NoError(t, err)
		}

		user, tasks, err := svc.List(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.Email, user.Email)
		require.Len(t, tasks, 3)
		assert.Equal(t, "first", tasks[0].Title)
		assert.Equal(t, "second", tasks[1].Title)
		assert.Equal(t, "third", tasks[2].Title)
	})

	t.Run("accepts ids with surrounding whitespace", func(t *testing.T) {
		_, tasks, err := svc.List(ctx, " "+owner.ID+" ")
		require.NoError(t, err)
		assert.Len(t, tasks, 3)
	})

	t.Run("rejects unknown user id", func(t *testing.T) {
		_, _, err := svc.List(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	svc, store := newTaskService(t)
	owner := seedUser(t, store, "carol@example.com", "carol")

	task, err := svc.Add(ctx, "Buy milk", "2%", owner.Email)
	require.NoError(t, err)

	t.Run("replaces title and body, keeps id and owner", func(t *testing.T) {
		updated, err := svc.Update(ctx, task.ID, "Buy oat milk", "unsweetened")
		require.NoError(t, err)

		assert.Equal(t, task.ID, updated.ID)
		assert.Equal(t, task.OwnerID, updated.OwnerID)
		assert.Equal(t, "Buy oat milk", updated.Title)
		assert.Equal(t, "unsweetened", updated.Body)

		_, tasks, err := svc.List(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Buy oat milk", tasks[0].Title)
	})

	t.Run("rejects unknown task id", func(t *testing.T) {
		_, err := svc.Update(ctx, "00000000-0000-0000-0000-000000000000", "t", "b")
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	svc, store := newTaskService(t)
	owner := seedUser(t, store, "dave@example.com", "dave")

	task, err := svc.Add(ctx, "Buy milk", "2%", owner.Email)
	require.NoError(t, err)

	t.Run("removes the task from the owner's list", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, task.ID))

		_, tasks, err := svc.List(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, task.ID), ErrTaskNotFound)
	})
}

func TestConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc, store := newTaskService(t)
	owner := seedUser(t, store, "eve@example.com", "eve")

	// Task creation is a single-statement write, so every successful
	// concurrent add must be visible in the final list.
	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Add(ctx, "task", "body", owner.Email)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}

	_, tasks, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, succeeded, len(tasks))
}
