package session

import (
	"context"
	"io"
	"testing"
	"time"

	"ArcadeFlow/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestIssueAndGet(t *testing.T) {
	svc := NewService(NewMemoryStore(), time.Hour, quietLogger())
	ctx := context.Background()

	sess, err := svc.Issue(ctx)
	require.NoError(t, err)
	assert.Len(t, sess.UserID, 36)
	assert.Equal(t, DefaultUsername(sess.UserID), sess.Username)

	got, err := svc.Get(ctx, sess.UserID)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)

	_, err = svc.Get(ctx, "unknown")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = svc.Get(ctx, "  ")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := &memoryStore{entries: map[string]entry{}, now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{UserID: "a"}, time.Minute))
	require.NoError(t, store.Save(ctx, &Session{UserID: "forever"}, 0))

	now = now.Add(2 * time.Minute)
	_, err := store.Load(ctx, "a")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = store.Load(ctx, "forever")
	assert.NoError(t, err)
}

func TestDefaultUsername(t *testing.T) {
	assert.Equal(t, "User-ABCD1234", DefaultUsername("abcd1234-ef56-7890-abcd-ef1234567890"))
	assert.Equal(t, "User-U1", DefaultUsername("u-1"))
	assert.Equal(t, "User", DefaultUsername(""))
}

func TestMemoryStorePrunesExpiredOnSave(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := &memoryStore{entries: map[string]entry{}, now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{UserID: "old"}, time.Minute))
	require.NoError(t, store.Save(ctx, &Session{UserID: "forever"}, 0))

	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, &Session{UserID: "new"}, time.Hour))

	assert.Len(t, store.entries, 2)
	assert.NotContains(t, store.entries, "old")
	assert.Contains(t, store.entries, "forever")
}
