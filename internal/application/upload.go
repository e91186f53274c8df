package application

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/linskybing/logistics-go/internal/storage"
)

// sniffLen is how much of an upload is read to detect its content type.
const sniffLen = 3072

// FileUpload is a file received from a client.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// submissionMimeTypes are accepted for document submissions.
var submissionMimeTypes = map[string]struct{}{
	"application/pdf":    {},
	"image/jpeg":         {},
	"image/png":          {},
	"image/webp":         {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// libraryExtensions are accepted for the document library.
var libraryExtensions = map[string]struct{}{
	"pdf": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {}, "ppt": {}, "pptx": {}, "txt": {},
}

func baseContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func checkSize(up FileUpload, max int64) error {
	if up.Size <= 0 {
		return invalidField("file", "File is empty")
	}
	if up.Size > max {
		return invalidField("file", fmt.Sprintf("File size must be less than %dMB", max>>20))
	}
	return nil
}

// validateSubmissionFile checks the declared type against the allow-list and
// against the leading bytes of the content. up.Reader is replaced so that the
// sniffed bytes are still uploaded.
func validateSubmissionFile(up *FileUpload, max int64) error {
	if up.Reader == nil || strings.TrimSpace(up.Name) == "" {
		return invalidField("file", "Please select a file to upload")
	}
	declared := baseContentType(up.ContentType)
	if _, ok := submissionMimeTypes[declared]; !ok {
		return invalidField("file", "Invalid file type. Please upload PDF, images, or Word documents.")
	}
	if err := checkSize(*up, max); err != nil {
		return err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(up.Reader, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return infra("read upload", err)
	}
	head = head[:n]
	up.Reader = io.MultiReader(bytes.NewReader(head), up.Reader)

	if !contentMatches(declared, head) {
		return invalidField("file", "File content does not match its type")
	}
	return nil
}

// contentMatches reports whether the detected type, or one of its parents,
// is the declared type.
func contentMatches(declared string, head []byte) bool {
	for m := mimetype.Detect(head); m != nil; m = m.Parent() {
		if m.Is(declared) {
			return true
		}
	}
	return false
}

func validateLibraryFile(up FileUpload, max int64) error {
	if up.Reader == nil || strings.TrimSpace(up.Name) == "" {
		return invalidField("file", "Please select a file to upload")
	}
	if _, ok := libraryExtensions[storage.Ext(up.Name)]; !ok {
		return invalidField("file", "Invalid file type. Allowed: .pdf, .doc, .docx, .xls, .xlsx, .ppt, .pptx, .txt")
	}
	return checkSize(up, max)
}
