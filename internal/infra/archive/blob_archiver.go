// Package archive keeps raw uploaded CSV files in a gocloud blob bucket.
package archive

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"salesinsight/config"
	"salesinsight/internal/domain/service"
	"salesinsight/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes: file://, mem:// and gs://.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobArchiver struct {
	bucket *blob.Bucket
	prefix string
	now    func() time.Time
}

// NewBlobArchiver stores uploads in bucket under prefix/companyID/.
func NewBlobArchiver(bucket *blob.Bucket, prefix string) service.Archiver {
	return &blobArchiver{bucket: bucket, prefix: strings.Trim(prefix, "/"), now: time.Now}
}

func (a *blobArchiver) Store(ctx context.Context, companyID uuid.UUID, filename string, data []byte) (string, error) {
	key := a.key(companyID, filename)

	err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: "text/csv",
		Metadata: map[string]string{
			"original_filename": path.Base(filename),
			"sha256":            util.Checksum(data),
		},
	})
	if err != nil {
		return "", errors.Wrapf(err, "archive upload %s", key)
	}

	return key, nil
}

// key is prefix/company/20060102T150405Z-uuid.csv so a listing sorts by upload time.
func (a *blobArchiver) key(companyID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".csv"
	}
	name := a.now().UTC().Format("20060102T150405Z") + "-" + uuid.NewString() + ext

	return path.Join(a.prefix, companyID.String(), name)
}

type noopArchiver struct{}

func (noopArchiver) Store(context.Context, uuid.UUID, string, []byte) (string, error) {
	return "", nil
}

// ArchiverParams holds dependencies for the Archiver, injected by Fx
type ArchiverParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArchiver opens archive.bucketUrl, or returns an archiver that keeps nothing when unset.
func NewArchiver(params ArchiverParams) (service.Archiver, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Upload archive not configured")

		return noopArchiver{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive bucket %s", cfg.BucketURL)
	}
	params.Logger.Info("Upload archive ready", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobArchiver(bucket, cfg.Prefix), nil
}

// Module provides the upload archive FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewArchiver),
)
