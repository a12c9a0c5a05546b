package cli

// Error codes for JSON output. These are stable identifiers that scripts
// and editor integrations can match on.
const (
	ErrCodeVaultNotFound       = "VAULT_NOT_FOUND"
	ErrCodeConfigInvalid       = "CONFIG_INVALID"
	ErrCodeFileNotFound        = "FILE_NOT_FOUND"
	ErrCodeFileExists          = "FILE_EXISTS"
	ErrCodeSectionNotFound     = "SECTION_NOT_FOUND"
	ErrCodeImportNotConfigured = "IMPORT_NOT_CONFIGURED"
	ErrCodeAlreadyArchived     = "ALREADY_ARCHIVED"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeMissingArgument     = "MISSING_ARGUMENT"
	ErrCodeEditorFailed        = "EDITOR_FAILED"
	ErrCodeIOError             = "IO_ERROR"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)
