package constants

// Sheet and column names expected in uploaded workbooks
const (
	SheetEmployeeTargets = "Employee Targets"
	SheetBUTargets       = "BU Targets"

	ColEmployee = "Employee Responsible"
	ColHelios   = "Helios Code"
	ColTarget   = "Target"
	ColBU       = "BU"
)

// Upload form field names
const (
	FieldSalesFile   = "file"
	FieldOBFile      = "ob_file"
	FieldTargetsFile = "targets_file"
)

// MaxUploadBytes caps a single multipart upload.
const MaxUploadBytes = 16 << 20

// Content types
const (
	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"
	ContentTypeXLSX   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Dataset labels used in validation messages
const (
	DatasetSales = "sales"
	DatasetOB    = "OB"
)
