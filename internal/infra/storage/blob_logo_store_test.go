package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resto/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestStore(t *testing.T) (*blobLogoStore, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Uploads.Dir = dir
	cfg.Uploads.PublicPath = "/uploads"

	lifecycle := fxtest.NewLifecycle(t)
	store, err := NewLogoStore(Params{
		Lifecycle: lifecycle,
		Config:    cfg,
	})
	require.NoError(t, err)
	t.Cleanup(func() { lifecycle.RequireStop() })

	blobStore, ok := store.(*blobLogoStore)
	require.True(t, ok)

	return blobStore, dir
}

func TestSave_ContentKeyedPath(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	publicPath, err := store.Save(ctx, "logo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(publicPath, ".png"))

	stored := filepath.Join(dir, strings.TrimPrefix(publicPath, "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSave_SameContentSamePath(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, "a.png", strings.NewReader("identical"))
	require.NoError(t, err)
	second, err := store.Save(ctx, "b.png", strings.NewReader("identical"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSave_SameFilenameDifferentContent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, "logo.png", strings.NewReader("original"))
	require.NoError(t, err)
	second, err := store.Save(ctx, "logo.png", strings.NewReader("replacement"))
	require.NoError(t, err)

	// The client filename never keys the object, so uploads sharing a name
	// cannot clobber each other.
	assert.NotEqual(t, first, second)
}

func TestSave_ExtensionIsNormalized(t *testing.T) {
	store, _ := newTestStore(t)

	publicPath, err := store.Save(context.Background(), "LOGO.JPG", strings.NewReader("jpg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(publicPath, ".jpg"))
}

func TestDelete(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	publicPath, err := store.Save(ctx, "logo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, publicPath))

	stored := filepath.Join(dir, strings.TrimPrefix(publicPath, "/uploads/"))
	_, statErr := os.Stat(stored)
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, publicPath))
}

func TestDelete_UnknownPath(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "/uploads/never-saved.png"))
	assert.NoError(t, store.Delete(context.Background(), ""))
}
