package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeVideo       = "video/"
	MimePDF         = "application/pdf"
	MimeExcel       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeWord        = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedVideoExtensions    = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
	AllowedDocumentExtensions = []string{".pdf", ".xls", ".xlsx", ".doc", ".docx"}
)
