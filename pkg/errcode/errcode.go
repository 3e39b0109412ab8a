package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Source errors
	SourceUnavailableError
	SourceReadError
	SourceHeaderError

	// Geo errors
	GeoTableError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBForeignKeysError
	DBTableCheckError

	// Persist errors
	PersistGORMConnectionError
	PersistSchemaError
	PersistWriteError
	ConstraintViolationError

	// Report errors
	ReportQueryError
	ReportRenderError
)
