package service

import (
	"io"
	"mime/multipart"

	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/storage"
)

// UploadService accepts uploaded file payloads and persists them through the
// attachment store, returning the descriptors consumed by project writes.
type UploadService struct {
	store *storage.DiskStore
	log   *logger.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(store *storage.DiskStore) *UploadService {
	return &UploadService{
		store: store,
		log:   logger.New(),
	}
}

// FileDescriptor describes a stored attachment blob
type FileDescriptor struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// SaveFiles persists every file in the batch and returns one descriptor per file.
// The batch is all-or-nothing: if any single write fails, blobs already written
// for this batch are removed and the whole operation fails.
func (s *UploadService) SaveFiles(files []*multipart.FileHeader) ([]FileDescriptor, error) {
	if len(files) == 0 {
		return nil, apperrors.ErrNoFilesProvided
	}

	descriptors := make([]FileDescriptor, 0, len(files))
	for _, fh := range files {
		descriptor, err := s.saveFile(fh)
		if err != nil {
			s.rollback(descriptors)
			return nil, apperrors.NewUploadError(fh.Filename, err)
		}
		descriptors = append(descriptors, descriptor)
	}

	return descriptors, nil
}

func (s *UploadService) saveFile(fh *multipart.FileHeader) (FileDescriptor, error) {
	file, err := fh.Open()
	if err != nil {
		return FileDescriptor{}, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return FileDescriptor{}, err
	}

	fileURL, err := s.store.Save(fh.Filename, content)
	if err != nil {
		return FileDescriptor{}, err
	}

	return FileDescriptor{
		FileName: fh.Filename,
		FileURL:  fileURL,
		FileType: fh.Header.Get("Content-Type"),
		FileSize: fh.Size,
	}, nil
}

// rollback removes blobs written earlier in a failed batch, best effort
func (s *UploadService) rollback(written []FileDescriptor) {
	for _, d := range written {
		if err := s.store.Remove(d.FileURL); err != nil {
			s.log.WithError(err).WithField("fileUrl", d.FileURL).Warn("failed to remove partially uploaded file")
		}
	}
}
