package handlers

import (
	"context"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageStore persists an uploaded prescription image and returns its public URL
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

// CloudinaryStore stores prescription images in a Cloudinary folder
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore creates an image store from the CLOUDINARY_* environment variables
func NewCloudinaryStore() (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload pushes the image into the prescriptions folder and returns the HTTPS URL
func (c *CloudinaryStore) Upload(ctx context.Context, file io.Reader) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: "prescriptions"})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
