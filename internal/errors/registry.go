package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration (F001-F099)
	"F001": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No fieldkit.json was found in the directory or any of its parents.",
	},
	"F002": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "The config file could not be read or is not valid JSON.",
	},
	"F003": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
	},

	// Translation catalogs (F100-F199)
	"F100": {
		Category: CategoryCatalog,
		Message:  "Catalog not readable",
	},
	"F101": {
		Category: CategoryCatalog,
		Message:  "Invalid catalog",
		Detail:   "A catalog must map language tags to flat key/message mappings.",
	},
	"F102": {
		Category: CategoryCatalog,
		Message:  "Unsupported language tag",
	},

	// Form state (F200-F299)
	"F200": {
		Category: CategoryForm,
		Message:  "Unknown field",
		Detail:   "The field was never registered with the form.",
	},
	"F201": {
		Category: CategoryForm,
		Message:  "Submit handler failed",
	},

	// Command line (F300-F399)
	"F300": {
		Category: CategoryCLI,
		Message:  "Invalid fixture",
		Detail:   "A fixture is a YAML document with steps and expectations.",
	},
	"F301": {
		Category: CategoryCLI,
		Message:  "Unknown dialog",
	},
	"F302": {
		Category: CategoryCLI,
		Message:  "Fixture check failed",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
