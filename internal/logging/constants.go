package logging

// Standardized field names for structured logging.
// Keep these stable: downstream log queries filter on them.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldRunID      = "run_id"
	FieldStage      = "stage"
	FieldRows       = "rows"
	FieldColumns    = "columns"
	FieldCount      = "count"
	FieldSheet      = "sheet"
	FieldFormat     = "format"
	FieldWarning    = "warning"
	FieldKeyword    = "keyword"
	FieldWorkers    = "workers"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
)
