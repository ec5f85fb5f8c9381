package catalog

// Error message formats
const (
	ErrMsgReadCatalog  = "failed to read catalog %s: %w"
	ErrMsgParseCatalog = "failed to parse catalog: %w"
	ErrMsgDuplicateID  = "duplicate %s id %q"
	ErrMsgDanglingRef  = "%s %q references unknown %s %q"
)
