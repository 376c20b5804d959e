package domain

import "strconv"

// Stat is a named character attribute such as STR or Hit Points
type Stat struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// RecordName implements Record
func (s Stat) RecordName() string { return s.Name }

// Fields implements Record
func (s Stat) Fields() []Field {
	return []Field{
		{Label: FieldName, Value: s.Name},
		{Label: FieldValue, Value: strconv.Itoa(s.Value)},
	}
}

// UnmarshalJSON reads a stat leniently: a numeric string value is accepted
// and an unreadable one is zero.
func (s *Stat) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	*s = Stat{
		Name:  looseString(fields["name"]),
		Value: looseInt(fields["value"]),
	}
	return nil
}
