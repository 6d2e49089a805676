// Package s3 provides a BlobStore implementation backed by Amazon S3.
//
// Reads are ranged GETs. Writes go through the SDK upload manager, which
// switches to multipart uploads for large reports and can attach CRC32C
// checksums.
//
// # Basic Usage
//
//	store, err := s3.NewFromConfig(ctx, "my-bucket", "datasets/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ds, err := dataset.Load(ctx, store, "points.txt")
package s3
