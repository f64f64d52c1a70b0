package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PresignTTL is how long a store image URL stays valid.
const PresignTTL = time.Hour

var ErrUnsupportedImage = errors.New("unsupported image type")

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient connects to MinIO and creates the bucket when it is missing.
func NewMinIOClient(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// ImageContentType maps a file name to its image content type.
func ImageContentType(filename string) (string, error) {
	ct, ok := imageContentTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", ErrUnsupportedImage
	}
	return ct, nil
}

// ObjectName builds a unique ASCII object name for an uploaded store image.
func ObjectName(originalFilename string, now time.Time) string {
	return fmt.Sprintf("store_%s_%d%s",
		uuid.New().String()[:8],
		now.Unix(),
		strings.ToLower(filepath.Ext(originalFilename)))
}

// UploadFile stores an image and returns its object name.
func (m *MinIOClient) UploadFile(ctx context.Context, fileData []byte, originalFilename string) (string, error) {
	contentType, err := ImageContentType(originalFilename)
	if err != nil {
		return "", err
	}
	name := ObjectName(originalFilename, time.Now())

	reader := bytes.NewReader(fileData)
	_, err = m.client.PutObject(ctx, m.bucketName, name, reader, int64(len(fileData)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logrus.Infof("File %s uploaded successfully", name)
	return name, nil
}

func (m *MinIOClient) DeleteFile(ctx context.Context, name string) error {
	err := m.client.RemoveObject(ctx, m.bucketName, name, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logrus.Infof("File %s deleted successfully", name)
	return nil
}

// GetFileURL returns a presigned GET URL valid for PresignTTL.
func (m *MinIOClient) GetFileURL(ctx context.Context, name string) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucketName, name, PresignTTL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}
