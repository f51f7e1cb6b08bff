package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. malformed identifier).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrExportFailure is returned when an address cannot be exported at all,
// e.g. its flat list was never loaded. Nothing is written to disk.
var ErrExportFailure = errors.New("export failure")

// ErrDirectoryNotFound is returned by the archiver when the target directory
// does not exist. The wrapping message always contains the path.
var ErrDirectoryNotFound = errors.New("directory not found")

// ErrFileNotFound is returned by the archiver when one of the files to pack
// does not exist. The wrapping message always contains the path.
var ErrFileNotFound = errors.New("file not found")
