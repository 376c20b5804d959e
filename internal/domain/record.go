package domain

// Field is one labelled value of a record, in display order
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Record is implemented by every collection element so search results of any
// kind can be listed field by field.
type Record interface {
	RecordName() string
	Fields() []Field
}

// Field labels
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCount       = "count"
	FieldActivity    = "activeOrPassive"
	FieldKey         = "key"
	FieldValue       = "value"
)
