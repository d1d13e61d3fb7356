package service

import (
	"academy_backend/internal/config"
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/internal/util"
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// ContentService serves extracted Articulate/SCORM package files from local
// disk and stores instructor-uploaded course attachments. Packages live under
// Config.Content.PackagePath/<articulateId>/.
type ContentService struct {
	CourseRepo *repository.CourseRepository
	Storage    *StorageService
	Config     *config.Config
}

func NewContentService(courseRepo *repository.CourseRepository, storage *StorageService, cfg *config.Config) *ContentService {
	return &ContentService{CourseRepo: courseRepo, Storage: storage, Config: cfg}
}

// resolvePackagePath joins the requested file onto the package root and
// rejects anything that escapes it.
func resolvePackagePath(packageRoot, articulateID, requested string) (string, error) {
	root := filepath.Join(packageRoot, articulateID)

	cleaned := filepath.Clean("/" + requested) // collapses any ".." to stay under /
	full := filepath.Join(root, cleaned)

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	fullAbs, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}

	if fullAbs != rootAbs && !strings.HasPrefix(fullAbs, rootAbs+string(os.PathSeparator)) {
		return "", util.ErrPathTraversal
	}

	return fullAbs, nil
}

// PackageFilePath validates the course, maps the request onto disk, and
// confirms the file exists. Callers translate ErrPathTraversal to 403 and
// ErrPackageNotFound to 404.
func (s *ContentService) PackageFilePath(courseID uint, requested string) (string, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return "", util.ErrCourseNotFound
	}
	if course.ArticulateID == "" {
		return "", util.ErrPackageNotFound
	}

	full, err := resolvePackagePath(s.Config.Content.PackagePath, course.ArticulateID, requested)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", util.ErrPackageNotFound
	}

	return full, nil
}

// UploadAttachment stores a course document (pdf, word, excel) in the object
// store and returns its URL. Office formats sniff as zip archives, so the
// extension list is the effective gate and the declared MIME type is only
// trusted when it names a document format.
func (s *ContentService) UploadAttachment(ctx context.Context, ownerID uint, fileHeader *multipart.FileHeader) (string, error) {
	if !util.HasAllowedExtension(fileHeader.Filename, util.AllowedDocumentExtensions) {
		return "", util.ErrUnsupportedFileType
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if !util.IsDocument(contentType) {
		contentType = util.MimeOctetStream
	}

	key := fmt.Sprintf("attachments/%d/%s%s", ownerID, model.GenerateUUID(),
		strings.ToLower(filepath.Ext(fileHeader.Filename)))

	return s.Storage.Upload(ctx, key, src, fileHeader.Size, contentType)
}
