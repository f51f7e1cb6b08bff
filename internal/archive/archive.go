// Package archive packs files from disk into a downloadable zip archive.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Liam44/Dios-sub002/internal/domain"
)

// FileArchiver creates zip archives on disk and returns them in memory.
// The zero value is ready to use.
type FileArchiver struct{}

// NewFileArchiver returns a FileArchiver.
func NewFileArchiver() *FileArchiver {
	return &FileArchiver{}
}

// CreateArchive packs filePaths into "{zipFileName}.zip" inside directoryPath
// and returns the archive. Each entry is named after the base name of its
// source file. The ".zip" suffix is not doubled when zipFileName already
// carries it.
//
// An empty zipFileName or directoryPath yields the neutral result without
// touching the disk. A missing directory or source file fails the whole call
// with domain.ErrDirectoryNotFound or domain.ErrFileNotFound, and no archive
// is written. No files at all produces a valid empty archive.
func (a *FileArchiver) CreateArchive(zipFileName, directoryPath string, filePaths []string) (*domain.ZipResult, error) {
	if directoryPath == "" || zipFileName == "" {
		return domain.NewNeutralZipResult(), nil
	}

	info, err := os.Stat(directoryPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("archive.CreateArchive: %q: %w", directoryPath, domain.ErrDirectoryNotFound)
	}

	for _, p := range filePaths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("archive.CreateArchive: %q: %w", p, domain.ErrFileNotFound)
			}
			return nil, fmt.Errorf("archive.CreateArchive: %w", err)
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range filePaths {
		if err := addFile(zw, p); err != nil {
			return nil, fmt.Errorf("archive.CreateArchive: %q: %w", p, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("archive.CreateArchive: %w", err)
	}

	name := archiveName(zipFileName)
	if err := writeAtomic(filepath.Join(directoryPath, name), buf.Bytes()); err != nil {
		return nil, fmt.Errorf("archive.CreateArchive: %w", err)
	}

	return &domain.ZipResult{
		FileName:    name,
		Content:     bytes.NewReader(buf.Bytes()),
		ContentType: domain.ZipContentType,
	}, nil
}

func archiveName(zipFileName string) string {
	if strings.HasSuffix(strings.ToLower(zipFileName), ".zip") {
		return zipFileName
	}
	return zipFileName + ".zip"
}

// addFile copies the file at path into zw as a top-level entry.
func addFile(zw *zip.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrFileNotFound
		}
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}

// writeAtomic writes data to a temporary sibling of path and renames it into place.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".zip-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
