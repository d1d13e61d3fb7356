package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateMimeType(t *testing.T) {
	// %PDF magic bytes sniff as application/pdf.
	pdf := bytes.NewReader([]byte("%PDF-1.7\n..."))
	mime, err := ValidateMimeType(pdf, []string{MimePDF})
	if err != nil {
		t.Fatal(err)
	}
	if mime != MimePDF {
		t.Errorf("mime = %q, want %q", mime, MimePDF)
	}
}

func TestValidateMimeTypeRejected(t *testing.T) {
	text := strings.NewReader("just plain text, not a video")
	if _, err := ValidateMimeType(text, []string{"video/"}); err == nil {
		t.Error("plain text must not pass a video filter")
	}
}

func TestIsVideo(t *testing.T) {
	if !IsVideo("video/mp4") {
		t.Error("video/mp4 should be a video")
	}
	if IsVideo("application/pdf") {
		t.Error("application/pdf should not be a video")
	}
}

func TestIsDocument(t *testing.T) {
	for _, mime := range []string{MimePDF, MimeExcel, MimeWord} {
		if !IsDocument(mime) {
			t.Errorf("%s should be a document", mime)
		}
	}
	if IsDocument("video/mp4") {
		t.Error("video/mp4 should not be a document")
	}
}

func TestHasAllowedExtension(t *testing.T) {
	cases := []struct {
		filename string
		allowed  []string
		want     bool
	}{
		{"lecture.mp4", AllowedVideoExtensions, true},
		{"LECTURE.MP4", AllowedVideoExtensions, true},
		{"syllabus.pdf", AllowedDocumentExtensions, true},
		{"syllabus.pdf", AllowedVideoExtensions, false},
		{"archive.mp4.exe", AllowedVideoExtensions, false},
		{"noextension", AllowedVideoExtensions, false},
	}

	for _, tc := range cases {
		if got := HasAllowedExtension(tc.filename, tc.allowed); got != tc.want {
			t.Errorf("HasAllowedExtension(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}
