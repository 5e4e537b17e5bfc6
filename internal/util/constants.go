package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeVideo       = "video/"
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeZip         = "application/zip"
	MimeText        = "text/"
	MimeHLS         = "application/x-mpegURL"
	MimeOctetStream = "application/octet-stream"
)
