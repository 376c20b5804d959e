package domain

// Enemy is an entry in the campaign's enemy log. Duplicates are allowed.
type Enemy struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// RecordName implements Record
func (e Enemy) RecordName() string { return e.Name }

// Fields implements Record
func (e Enemy) Fields() []Field {
	return []Field{
		{Label: FieldName, Value: e.Name},
		{Label: FieldDescription, Value: e.Description},
	}
}

// UnmarshalJSON reads an enemy leniently, keeping oddly typed fields as text
func (e *Enemy) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	*e = Enemy{
		Name:        looseString(fields["name"]),
		Description: looseString(fields["description"]),
	}
	return nil
}
