package models

type EntityKind string

const (
	EntityKindOrder              EntityKind = "Order"
	EntityKindProduct            EntityKind = "Product"
	EntityKindProductIngredients EntityKind = "ProductIngredients"
)

func (k EntityKind) String() string {
	return string(k)
}

// FileFormat is the input format picked from a file extension.
type FileFormat string

const (
	FileFormatJSON    FileFormat = "json"
	FileFormatCSV     FileFormat = "csv"
	FileFormatXLSX    FileFormat = "xlsx"
	FileFormatUnknown FileFormat = ""
)
