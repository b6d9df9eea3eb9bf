package constants

// ============================================================================
// UPLOAD VALIDATION ERRORS
// ============================================================================

const (
	ErrNoSalesFile   = "No sales file selected"
	ErrNoOBFile      = "No OB file selected"
	ErrNoTargetsFile = "No targets file selected"

	ErrFailedToParseMultipartForm = "Failed to parse multipart form"
	ErrUnsupportedFileType        = "unsupported file type"
	ErrMethodNotAllowed           = "Method Not Allowed"
)

// ============================================================================
// ERROR TEMPLATES
// ============================================================================

const (
	// FormatMissingColumns lists the required columns a sheet lacks.
	FormatMissingColumns = "Missing column(s) in %s: %s"

	// FormatUnreadableWorkbook reports a workbook that could not be
	// parsed, with the dataset label and underlying cause.
	FormatUnreadableWorkbook = "Could not read %s Excel - %s"

	// FormatMissingSheet reports an absent named sheet in the targets
	// workbook.
	FormatMissingSheet = "missing sheet %q in targets workbook"
)
