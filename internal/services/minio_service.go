package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"eventPlanner/configs"
)

// MinioService implements interfaces.FileManager on a MinIO bucket.
type MinioService struct {
	minioClient      *minio.Client
	bucketName       string
	externalEndpoint string
}

func NewMinioService(ctx context.Context, config *configs.Config) (*MinioService, error) {
	endpoint := config.Viper.GetString("minio.endpoint")
	accessKeyID := config.Viper.GetString("minio.access_key_id")
	secretAccessKey := config.Viper.GetString("minio.secret_access_key")
	useSSL := config.Viper.GetBool("minio.use_ssl")
	bucketName := config.Viper.GetString("minio.bucket")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := minioClient.BucketExists(ctx, bucketName)
		if errBucketExists != nil || !exists {
			return nil, fmt.Errorf("create bucket %s: %w", bucketName, err)
		}
		slog.Debug("bucket already exists", "bucket", bucketName)
	} else {
		slog.Info("bucket created", "bucket", bucketName)
	}

	return &MinioService{
		minioClient:      minioClient,
		bucketName:       bucketName,
		externalEndpoint: config.Viper.GetString("minio.external_endpoint"),
	}, nil
}

func (ms *MinioService) UploadFile(ctx context.Context, fileName string, file io.Reader, fileSize int64, contentType string) (string, error) {
	info, err := ms.minioClient.PutObject(ctx, ms.bucketName, fileName, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}
	return ms.GetPublicFileUrl(info.Key), nil
}

func (ms *MinioService) GetPublicFileUrl(fileKey string) string {
	return fmt.Sprintf("http://%s/%s/%s", ms.externalEndpoint, ms.bucketName, fileKey)
}
