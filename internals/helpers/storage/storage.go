package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/url"
	"regexp"
	"time"

	"helix_backend/internals/configs"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	bucketName    = "images"
	maxWidth      = 1600
	webpQuality   = 82
	uploadRetries = 3
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func newClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = uploadRetries
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil
	return client
}

// UploadImage re-encodes the uploaded image as webp and pushes it to the
// storage bucket. Returns the public URL of the stored object.
func UploadImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if configs.StorageProjectURL == "" || configs.StorageServiceKey == "" {
		return "", fmt.Errorf("storage credentials are not configured")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	encoded, err := encodeWebp(src)
	if err != nil {
		return "", err
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename)
	if err := putObject(filename, "image/webp", encoded); err != nil {
		return "", err
	}
	return PublicURL(filename), nil
}

// encodeWebp decodes whatever image format came in, caps the width and
// re-encodes as webp so the gallery serves one predictable format.
func encodeWebp(r io.Reader) (*bytes.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return buf, nil
}

func putObject(filename, contentType string, data *bytes.Buffer) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		configs.StorageProjectURL, bucketName, filename)

	req, err := retryablehttp.NewRequest("PUT", endpoint, bytes.NewReader(data.Bytes()))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+configs.StorageServiceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := newClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteObject removes a stored object by its bucket path.
func DeleteObject(path string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		configs.StorageProjectURL, bucketName, path)

	req, err := retryablehttp.NewRequest("DELETE", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+configs.StorageServiceKey)

	resp, err := newClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func PublicURL(filename string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		configs.StorageProjectURL, bucketName, url.PathEscape(filename))
}

func sanitizeFilename(filename string) string {
	return filenameSanitizer.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s.webp",
		folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
