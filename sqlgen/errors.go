package sqlgen

import "errors"

var (
	// ErrUnsupportedDialect is returned for a dialect name outside the
	// supported set.
	ErrUnsupportedDialect = errors.New("sqlgen: unsupported sql dialect")

	// ErrEmptyIdentifier is returned when cleaning an identifier leaves
	// nothing behind.
	ErrEmptyIdentifier = errors.New("sqlgen: identifier is empty after cleaning")

	// ErrGlobalTempTable is returned for table names with the ## prefix.
	// Only local temporary tables (#) are supported.
	ErrGlobalTempTable = errors.New("sqlgen: global temporary tables (##) are not supported")
)
