package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/interfaces"
)

type FileManagerService struct {
	fileManager interfaces.FileManager
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
	}
}

// UploadVendorLogo stores the logo under a collision-free name scoped to
// the event and returns its public URL.
func (fs *FileManagerService) UploadVendorLogo(ctx context.Context, eventID, vendorID uint, originalName string, file io.Reader, fileSize int64, contentType string) (string, error) {
	if fileSize <= 0 {
		return "", errs.ErrEmptyFile
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("events/%d/vendors/%d/%s%s", eventID, vendorID, uuid.NewString(), ext)
	return fs.fileManager.UploadFile(ctx, name, file, fileSize, contentType)
}
