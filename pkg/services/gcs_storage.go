package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"cafehub/pkg/config"
)

var (
	storageClient *storage.Client
	bucketName    string
)

// InitGCSStorage initializes the Cloud Storage client used for menu
// item images and cafe logos.
func InitGCSStorage(ctx context.Context) error {
	bucketName = config.AppConfig.GCPBucketName
	if bucketName == "" {
		return fmt.Errorf("GCP_BUCKET_NAME not set")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %v", err)
	}
	storageClient = client
	return nil
}

// StorageEnabled reports whether image uploads are available.
func StorageEnabled() bool {
	return storageClient != nil
}

// UploadImage stores an image under a unique object name and returns
// its public URL.
func UploadImage(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	if storageClient == nil {
		return "", fmt.Errorf("storage client not initialized")
	}

	objectName := uuid.NewString() + "-" + fileName
	writer := storageClient.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("upload failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("upload finalization failed: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectName), nil
}

// UploadImageFile uploads a multipart form file.
func UploadImageFile(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %v", err)
	}

	return UploadImage(ctx, data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
}

// DeleteImage removes an uploaded image by its public URL. Missing
// objects are ignored.
func DeleteImage(ctx context.Context, imageURL string) error {
	if imageURL == "" || storageClient == nil {
		return nil
	}

	parts := strings.Split(imageURL, "/")
	objectName := parts[len(parts)-1]
	if objectName == "" {
		return nil
	}

	if err := storageClient.Bucket(bucketName).Object(objectName).Delete(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return nil
		}
		return err
	}
	return nil
}
