// Package storage implements the logo asset store on top of a blob bucket.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"resto/config"
	"resto/internal/domain/service"
	"resto/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// keyHexLength is how many hex characters of the content digest form the
// object key. 16 characters of SHA-256 is plenty for a logo store.
const keyHexLength = 16

type blobLogoStore struct {
	bucket     *blob.Bucket
	publicPath string
}

// Params defines the dependencies for the logo store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewLogoStore opens the local bucket backing uploaded logos. The directory
// is created on first use so a fresh checkout can serve uploads immediately.
func NewLogoStore(params Params) (service.LogoStore, error) {
	bucket, err := fileblob.OpenBucket(params.Config.Uploads.Dir, &fileblob.Options{
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open logo bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobLogoStore{
		bucket:     bucket,
		publicPath: params.Config.Uploads.PublicPath,
	}, nil
}

// Save writes the logo under a content-derived key and returns its public
// path. The client filename only contributes the extension, so two uploads
// sharing a name never clobber each other, and re-uploading identical
// content lands on the same object.
func (store *blobLogoStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", errors.Wrap(err, "failed to read logo content")
	}

	key := objectKey(data, filename)

	writer, err := store.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentTypeFor(filename),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open logo writer")
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write logo content")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize logo write")
	}

	return path.Join(store.publicPath, key), nil
}

// Delete removes a stored logo by its public path. Unknown paths are
// treated as already deleted.
func (store *blobLogoStore) Delete(ctx context.Context, publicPath string) error {
	key := strings.TrimPrefix(publicPath, store.publicPath)
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return nil
	}

	if err := store.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete logo")
	}

	return nil
}

func objectKey(data []byte, filename string) string {
	digest := sha256.Sum256(data)

	return hex.EncodeToString(digest[:])[:keyHexLength] + strings.ToLower(filepath.Ext(filename))
}

func contentTypeFor(filename string) string {
	if contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); contentType != "" {
		return contentType
	}

	return "application/octet-stream"
}
