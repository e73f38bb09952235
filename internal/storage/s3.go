// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage client used
// for two buckets: a public assets bucket (app icons, push images) and a
// private artifacts bucket (APK/AAB/IPA files produced by the build
// workers). It wraps the AWS SDK v2 and is configured for path-style
// access (required by CEPH/Hetzner).
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Client wraps an S3 client for operations on the two Applyn buckets.
type Client struct {
	s3              *s3.Client
	presigner       *s3.PresignClient
	assetsBucket    string
	artifactsBucket string
	endpoint        string
	publicURL       string // optional CDN/direct URL for asset files
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the server
// to start without storage in development.
func New(endpoint, region, accessKey, secretKey, assetsBucket, artifactsBucket, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:              s3Client,
		presigner:       s3.NewPresignClient(s3Client),
		assetsBucket:    assetsBucket,
		artifactsBucket: artifactsBucket,
		endpoint:        endpoint,
		publicURL:       strings.TrimRight(publicURL, "/"),
	}, nil
}

// UploadAsset stores a publicly served file (icon, push image) in the
// assets bucket with a public-read ACL and returns its URL.
func (c *Client) UploadAsset(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.assetsBucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", c.assetsBucket, key, err)
	}
	return c.AssetURL(key), nil
}

// UploadArtifact stores a build output in the private artifacts bucket.
// Artifacts are only reachable through presigned URLs.
func (c *Client) UploadArtifact(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.artifactsBucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", c.artifactsBucket, key, err)
	}
	return nil
}

// DeleteAsset removes a file from the assets bucket.
func (c *Client) DeleteAsset(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.assetsBucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", c.assetsBucket, key, err)
	}
	return nil
}

// AssetURL returns the public URL for a file in the assets bucket.
// Uses the configured public URL if set, otherwise builds a path-style URL.
func (c *Client) AssetURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.assetsBucket + "/" + key
}

// ArtifactURL generates a pre-signed GET URL for a build artifact.
// The URL is valid for the specified duration (S3 caps presigned URLs at 7 days).
func (c *Client) ArtifactURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.artifactsBucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s/%s: %w", c.artifactsBucket, key, err)
	}
	return req.URL, nil
}

// ExtractAssetKey extracts the S3 object key from a public asset URL.
// Returns the key and true if the URL matches the storage URL pattern,
// or ("", false) if it doesn't belong to this storage.
func (c *Client) ExtractAssetKey(rawURL string) (string, bool) {
	// Try publicURL prefix first (CDN or custom domain).
	if c.publicURL != "" {
		prefix := c.publicURL + "/"
		if strings.HasPrefix(rawURL, prefix) {
			return rawURL[len(prefix):], true
		}
	}

	// Try endpoint/bucket prefix (path-style S3).
	prefix := c.endpoint + "/" + c.assetsBucket + "/"
	if strings.HasPrefix(rawURL, prefix) {
		return rawURL[len(prefix):], true
	}

	return "", false
}
