package archive

import (
	"context"
	"strings"
	"testing"
	"time"

	"salesinsight/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobArchiver_Store(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	archiver := NewBlobArchiver(bucket, "/uploads/")
	impl, ok := archiver.(*blobArchiver)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

	companyID := uuid.New()
	key, err := archiver.Store(context.Background(), companyID, "Sales Q1.CSV", []byte("Model,Sales_Count\n"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "uploads/"+companyID.String()+"/20260304T050607Z-"), key)
	assert.True(t, strings.HasSuffix(key, ".csv"), key)

	data, err := bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "Model,Sales_Count\n", string(data))

	attrs, err := bucket.Attributes(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "Sales Q1.CSV", attrs.Metadata["original_filename"])
	assert.Equal(t, util.Checksum([]byte("Model,Sales_Count\n")), attrs.Metadata["sha256"])
}

func TestNoopArchiver(t *testing.T) {
	key, err := noopArchiver{}.Store(context.Background(), uuid.New(), "a.csv", nil)
	require.NoError(t, err)
	assert.Empty(t, key)
}
