package utils

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Every asset lives under this folder in the bucket.
const imageFolder = "menu-card"

var cld *cloudinary.Cloudinary

// InitCloudinary builds the shared client once at startup.
func InitCloudinary() error {
	cloudinaryURL := os.Getenv("CLOUDINARY_URL")

	if cloudinaryURL == "" {
		return fmt.Errorf("CLOUDINARY_URL environment variable is required")
	}

	var err error
	cld, err = cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudinary: %v", err)
	}

	log.Println("Cloudinary initialized")
	return nil
}

// UploadResult is what a completed upload reports back.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
}

// Declared as variables so tests can stub the storage backend.
var (
	UploadImage = uploadImage
	DeleteImage = deleteImage
)

// uploadImage uploads an image under the menu-card folder. The object
// name is derived from the logical name plus the original filename.
func uploadImage(name string, file *multipart.FileHeader) (*UploadResult, error) {
	if cld == nil {
		return nil, fmt.Errorf("cloudinary not initialized")
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer f.Close()

	objectName := objectNameFor(name, file.Filename)

	ctx := context.Background()
	result, err := cld.Upload.Upload(ctx, f, uploader.UploadParams{
		PublicID:       objectName,
		ResourceType:   "image",
		Folder:         imageFolder,
		Overwrite:      api.Bool(true),
		UniqueFilename: api.Bool(true),
		UseFilename:    api.Bool(true),
	})

	if err != nil {
		return nil, fmt.Errorf("upload failed: %v", err)
	}

	return &UploadResult{
		PublicID:  result.PublicID,
		URL:       result.URL,
		SecureURL: result.SecureURL,
		Format:    result.Format,
		Bytes:     result.Bytes,
	}, nil
}

// deleteImage removes a previously uploaded image by its public ID.
func deleteImage(publicID string) error {
	if cld == nil {
		return fmt.Errorf("cloudinary not initialized")
	}

	ctx := context.Background()
	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})

	return err
}

// DeleteOldImage is the replace path: failure to remove the previous
// object must not fail the request that already uploaded its successor.
func DeleteOldImage(publicID string) {
	if publicID == "" {
		return
	}
	if err := DeleteImage(publicID); err != nil {
		log.Printf("Warning: failed to delete old image %s: %v", publicID, err)
	}
}

func objectNameFor(name, originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(originalName, ext)

	objectName := fmt.Sprintf("%s-%s", name, base)
	objectName = strings.ReplaceAll(objectName, " ", "-")
	objectName = strings.ToLower(objectName)

	return objectName
}

// ValidateImage validates an uploaded image file.
func ValidateImage(file *multipart.FileHeader) error {
	// Max 5MB
	if file.Size > 5*1024*1024 {
		return fmt.Errorf("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

	valid := false
	for _, allowedExt := range allowed {
		if ext == allowedExt {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("invalid file type. Allowed: jpg, jpeg, png, gif, webp, svg")
	}

	return nil
}
