package storage

import "time"

// Config contains the S3 connection settings.
type Config struct {
	Bucket         string        `env:"S3_BUCKET,required"`
	Region         string        `env:"S3_REGION,required"`
	AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"S3_SECRET_ACCESS_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`         // S3-compatible services only
	BaseURL        string        `env:"S3_BASE_URL"`         // public URL prefix for stored objects
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE"` // MinIO and similar
	UploadTimeout  time.Duration `env:"S3_UPLOAD_TIMEOUT" envDefault:"30s"`
}
