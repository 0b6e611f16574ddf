package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output.
const (
	FieldStrategy    = "strategy"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldConfidence  = "confidence"
	FieldKeyword     = "keyword"
	FieldVendor      = "vendor"
	FieldScore       = "score"
	FieldCount       = "count"
	FieldFile        = "file_path"
	FieldError       = "error"
)
