package storage

import "context"

// ObjectStore is the capability a probe needs from object storage:
// a metadata-only bucket access check and an object write. Implemented
// by the S3 adapter; tests substitute a fake.
type ObjectStore interface {
	// HeadBucket verifies the bucket exists and the caller can access it.
	HeadBucket(ctx context.Context, bucket string) error
	// PutObject writes body under key in bucket.
	PutObject(ctx context.Context, bucket, key string, body []byte) error
}
