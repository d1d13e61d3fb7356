package service

import (
	"academy_backend/internal/util"
	"context"
	"testing"
	"time"
)

func TestPresignCacheTTL(t *testing.T) {
	cases := []struct {
		urlTTL time.Duration
		want   time.Duration
	}{
		{15 * time.Minute, 12 * time.Minute},
		{10 * time.Minute, 8 * time.Minute},
		{time.Hour, 48 * time.Minute},
	}

	for _, tc := range cases {
		if got := presignCacheTTL(tc.urlTTL); got != tc.want {
			t.Errorf("presignCacheTTL(%v) = %v, want %v", tc.urlTTL, got, tc.want)
		}
	}
}

func TestPresignCacheTTLShorterThanURL(t *testing.T) {
	// The cache must always expire before the URL it holds.
	for _, ttl := range []time.Duration{time.Minute, 15 * time.Minute, 2 * time.Hour} {
		if got := presignCacheTTL(ttl); got >= ttl {
			t.Errorf("presignCacheTTL(%v) = %v, not shorter than the URL lifetime", ttl, got)
		}
	}
}

func TestVideoUploadRejectsUnsupportedExtension(t *testing.T) {
	svc := &VideoService{}

	for _, filename := range []string{"slides.pdf", "notes.txt", "noext"} {
		header := multipartFileHeader(t, filename, []byte("data"))
		if _, err := svc.Upload(context.Background(), 1, "t", header); err != util.ErrUnsupportedFileType {
			t.Errorf("Upload(%q) error = %v, want ErrUnsupportedFileType", filename, err)
		}
	}
}
