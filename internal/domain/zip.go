package domain

import "bytes"

// ZipContentType is the MIME type of every ZipResult, neutral ones included.
const ZipContentType = "application/zip"

// ZipResult is a downloadable archive held in memory.
//
// A neutral result (empty FileName, zero-length Content) means "nothing to
// export". It is distinct from a nil *ZipResult, which an Archiver may return
// to signal that archive creation failed.
type ZipResult struct {
	FileName    string
	Content     *bytes.Reader
	ContentType string
}

// NewNeutralZipResult returns the "nothing to export" sentinel.
func NewNeutralZipResult() *ZipResult {
	return &ZipResult{
		Content:     bytes.NewReader(nil),
		ContentType: ZipContentType,
	}
}

// IsNeutral reports whether r is the "nothing to export" sentinel.
func (r *ZipResult) IsNeutral() bool {
	return r.FileName == "" && r.Size() == 0
}

// Size returns the length of the archive, or 0 when r carries no content.
func (r *ZipResult) Size() int64 {
	if r.Content == nil {
		return 0
	}
	return r.Content.Size()
}
