// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible storage systems like Ceph,
// SeaweedFS and Garage, without pulling in the AWS SDK.
//
// # Basic Usage
//
//	store, err := minioblob.New(minioblob.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "datasets",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ds, err := dataset.Load(ctx, store, "points.txt")
//
// Reads are ranged GETs, so large datasets are streamed rather than
// downloaded up front.
package minio
