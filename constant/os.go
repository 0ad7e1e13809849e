package constant

// Platform identifiers matched against runtime.GOOS when picking the
// browser install suggestion.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
