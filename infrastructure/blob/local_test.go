package blob

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Write_URL(t *testing.T) {
	req := require.New(t)
	store, err := NewLocalStore(t.TempDir())
	req.NoError(err)
	ctx := context.Background()

	// When an avatar is uploaded
	req.NoError(store.Write(ctx, "images/abc", strings.NewReader("png-bytes")))

	// Then its reference points at the stored content
	url, err := store.URL(ctx, "images/abc")
	req.NoError(err)
	req.True(strings.HasPrefix(url, "file://"))
	req.True(strings.HasSuffix(url, "images/abc"))
	content, err := os.ReadFile(strings.TrimPrefix(url, "file://"))
	req.NoError(err)
	req.Equal("png-bytes", string(content))
}

func TestLocalStore_Missing_And_Traversal(t *testing.T) {
	req := require.New(t)
	store, err := NewLocalStore(t.TempDir())
	req.NoError(err)
	ctx := context.Background()

	_, err = store.URL(ctx, "images/none")
	req.ErrorIs(err, ErrBlobNotFound)

	exists, err := store.Exists(ctx, "images/none")
	req.NoError(err)
	req.False(exists)

	req.Error(store.Write(ctx, "../escape", strings.NewReader("x")))

	req.NoError(store.Write(ctx, "images/gone", strings.NewReader("x")))
	req.NoError(store.Delete(ctx, "images/gone"))
	exists, err = store.Exists(ctx, "images/gone")
	req.NoError(err)
	req.False(exists)
}
