package media

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds connection settings for an S3-compatible media bucket.
type MinioConfig struct {
	Endpoint  string // host:port, no scheme
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string // Optional CDN base; defaults to the endpoint URL
	UseSSL    bool
	Region    string
}

// MinioLibrary lists images uploaded under sectors/<sector>/ in a bucket.
type MinioLibrary struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioLibrary(cfg MinioConfig) (*MinioLibrary, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("minio endpoint and bucket are required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	base := strings.TrimRight(cfg.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket
	}
	return &MinioLibrary{client: client, bucket: cfg.Bucket, publicURL: base}, nil
}

// Images returns public URLs of image objects for sectorKey in key order.
func (l *MinioLibrary) Images(ctx context.Context, sectorKey string) ([]string, error) {
	prefix := "sectors/" + sectorKey + "/"
	var keys []string
	for obj := range l.client.ListObjects(ctx, l.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s/%s: %w", l.bucket, prefix, obj.Err)
		}
		if isImage(obj.Key) {
			keys = append(keys, obj.Key)
		}
	}
	sort.Strings(keys)

	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		urls = append(urls, l.objectURL(key))
	}
	return urls, nil
}

// Ping reports whether the bucket is reachable.
func (l *MinioLibrary) Ping(ctx context.Context) error {
	ok, err := l.client.BucketExists(ctx, l.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", l.bucket, err)
	}
	if !ok {
		return fmt.Errorf("bucket %s does not exist", l.bucket)
	}
	return nil
}

func (l *MinioLibrary) objectURL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return l.publicURL + "/" + strings.Join(parts, "/")
}

func isImage(key string) bool {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg", ".png", ".webp", ".avif", ".gif":
		return true
	}
	return false
}
