package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
)

// SaveTemp copies a multipart upload to a temp file so ffprobe and the S3
// uploader can work from a real path. The returned cleanup removes the file.
func SaveTemp(fh *multipart.FileHeader, pattern string) (path string, cleanup func(), err error) {
	src, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open multipart file, %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary file, %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("failed to copy data to temporary file, %w", err)
	}

	tmp.Close()

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}
