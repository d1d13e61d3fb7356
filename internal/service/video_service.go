package service

import (
	"academy_backend/internal/config"
	"academy_backend/internal/model"
	"academy_backend/internal/repository"
	"academy_backend/internal/util"
	"academy_backend/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// renditionHeights are the transcode targets; renditions taller than the
// source are skipped.
var renditionHeights = map[string]int{
	"1080p": 1080,
	"720p":  720,
	"480p":  480,
}

type VideoService struct {
	Repo    *repository.VideoRepository
	Storage *StorageService
	Redis   *redis.Client
	Config  *config.Config
}

func NewVideoService(repo *repository.VideoRepository, storage *StorageService, rdb *redis.Client, cfg *config.Config) *VideoService {
	return &VideoService{Repo: repo, Storage: storage, Redis: rdb, Config: cfg}
}

// presignCacheTTL keeps cached URLs for 80% of their validity so a client
// refreshing at the 80% mark always receives a URL minted for a fresh window.
func presignCacheTTL(urlTTL time.Duration) time.Duration {
	return urlTTL * 8 / 10
}

type SecureURLResult struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// GetSecureURL returns a short-lived presigned URL for a video rendition.
// Results are served from redis until 80% of the URL lifetime has passed.
func (s *VideoService) GetSecureURL(ctx context.Context, videoID uint, bucketName, quality string) (*SecureURLResult, error) {
	video, err := s.Repo.FindByID(videoID)
	if err != nil {
		return nil, util.ErrVideoNotFound
	}
	if video.Status != model.VideoReady {
		return nil, util.ErrVideoNotReady
	}

	bucket := bucketName
	if bucket == "" {
		bucket = video.Bucket
	}

	objectKey := video.ObjectKey
	if quality != "" && len(video.Qualities) > 0 {
		var qualities map[string]string
		if err := json.Unmarshal(video.Qualities, &qualities); err == nil {
			if key, ok := qualities[quality]; ok {
				objectKey = key
			}
		}
	}

	ttl := s.Config.Storage.PresignTTL()
	cacheKey := fmt.Sprintf("presign:%s:%s", bucket, objectKey)

	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
		var result SecureURLResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	url, err := s.Storage.PresignedURL(ctx, bucket, objectKey, ttl)
	if err != nil {
		return nil, err
	}

	result := &SecureURLResult{
		URL:       url,
		ExpiresAt: time.Now().Add(ttl),
	}

	if encoded, err := json.Marshal(result); err == nil {
		s.Redis.Set(ctx, cacheKey, encoded, presignCacheTTL(ttl))
	}

	return result, nil
}

// Upload stores the source video, probes it, and transcodes the quality
// renditions. Transcoding failures degrade to source-only playback.
func (s *VideoService) Upload(ctx context.Context, ownerID uint, title string, fileHeader *multipart.FileHeader) (*model.Video, error) {
	if !util.HasAllowedExtension(fileHeader.Filename, util.AllowedVideoExtensions) {
		return nil, util.ErrUnsupportedFileType
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeVideo, util.MimeOctetStream}); err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "video-upload-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	localPath := filepath.Join(tmpDir, filepath.Base(fileHeader.Filename))
	out, err := os.Create(localPath)
	if err != nil {
		return nil, err
	}
	if _, err := out.ReadFrom(src); err != nil {
		out.Close()
		return nil, err
	}
	out.Close()

	info, err := util.GetVideoInfo(localPath)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("videos/%d/%s/source%s", ownerID, model.GenerateUUID(), filepath.Ext(fileHeader.Filename))

	video := &model.Video{
		OwnerID:   ownerID,
		Title:     title,
		Bucket:    s.Config.Storage.MinioBucket,
		ObjectKey: objectKey,
		Duration:  info.Duration,
		Width:     info.Width,
		Height:    info.Height,
		Size:      info.Size,
		Status:    model.VideoProcessing,
	}
	if err := s.Repo.Create(video); err != nil {
		return nil, err
	}

	if _, err := s.Storage.UploadFile(ctx, objectKey, localPath, fileHeader.Header.Get("Content-Type")); err != nil {
		video.Status = model.VideoFailed
		_ = s.Repo.Update(video)
		return nil, err
	}

	if key := s.generatePoster(ctx, video, localPath); key != "" {
		video.Thumbnail = key
	}

	qualities := s.transcodeRenditions(ctx, video, localPath, info.Height)
	if len(qualities) > 0 {
		if raw, err := json.Marshal(qualities); err == nil {
			video.Qualities = raw
		}
	}

	video.Status = model.VideoReady
	if err := s.Repo.Update(video); err != nil {
		return nil, err
	}

	return video, nil
}

// generatePoster extracts a frame one second in and stores it next to the
// renditions. A failed poster never fails the upload.
func (s *VideoService) generatePoster(ctx context.Context, video *model.Video, localPath string) string {
	thumbPath := filepath.Join(filepath.Dir(localPath), "thumbnail.jpg")
	if err := util.GenerateThumbnail(localPath, thumbPath, "00:00:01"); err != nil {
		logger.Log.Warn("thumbnail generation failed",
			zap.Uint("videoId", video.ID), zap.Error(err))
		return ""
	}

	key := fmt.Sprintf("%s/thumbnail.jpg", filepath.Dir(video.ObjectKey))
	if _, err := s.Storage.UploadFile(ctx, key, thumbPath, "image/jpeg"); err != nil {
		logger.Log.Warn("thumbnail upload failed",
			zap.Uint("videoId", video.ID), zap.Error(err))
		return ""
	}
	return key
}

func (s *VideoService) transcodeRenditions(ctx context.Context, video *model.Video, localPath string, sourceHeight int) map[string]string {
	qualities := make(map[string]string)
	baseKey := filepath.Dir(video.ObjectKey)

	for label, height := range renditionHeights {
		if sourceHeight > 0 && height > sourceHeight {
			continue
		}

		dstPath := filepath.Join(filepath.Dir(localPath), label+".mp4")
		if err := util.TranscodeToHeight(localPath, dstPath, height); err != nil {
			logger.Log.Warn("rendition transcode failed",
				zap.Uint("videoId", video.ID),
				zap.String("quality", label),
				zap.Error(err))
			continue
		}

		key := fmt.Sprintf("%s/%s.mp4", baseKey, label)
		if _, err := s.Storage.UploadFile(ctx, key, dstPath, "video/mp4"); err != nil {
			logger.Log.Warn("rendition upload failed",
				zap.Uint("videoId", video.ID),
				zap.String("quality", label),
				zap.Error(err))
			continue
		}
		qualities[label] = key
	}

	return qualities
}

func (s *VideoService) Get(id uint) (*model.Video, error) {
	return s.Repo.FindByID(id)
}

func (s *VideoService) ListByOwner(ownerID uint, page, limit int) ([]model.Video, int64, error) {
	return s.Repo.ListByOwner(ownerID, page, limit)
}

func (s *VideoService) Delete(ctx context.Context, id uint) error {
	video, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Storage.Delete(ctx, video.ObjectKey); err != nil {
		logger.Log.Warn("deleting video object failed",
			zap.Uint("videoId", id), zap.Error(err))
	}
	return s.Repo.Delete(id)
}
