// Package s3 uploads the pre-deletion audit export.
//
// Before a sweep deletes anything, the matched configuration records can be
// written to an S3 bucket as a JSON document so the decommissioned
// inventory remains reconstructable after the discovery data is gone.
package s3
