package domain

import "strconv"

// Activity marks whether an item is used actively or works passively
type Activity string

const (
	ActivityActive  Activity = "Active"
	ActivityPassive Activity = "Passive"
)

// Valid reports whether a is one of the known activity values
func (a Activity) Valid() bool {
	return a == ActivityActive || a == ActivityPassive
}

// KeyFlag marks plot-critical items that may never be deleted outright
type KeyFlag string

const (
	KeyItem    KeyFlag = "Key"
	NotKeyItem KeyFlag = "NotKey"
)

// Valid reports whether k is one of the known key flag values
func (k KeyFlag) Valid() bool {
	return k == KeyItem || k == NotKeyItem
}

// legacyDescriptionKey is where the first inventory files kept the description
const legacyDescriptionKey = "desc"

// Item is a single inventory entry. Name is unique within the inventory
// after trimming and case folding.
type Item struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Count       int      `json:"count" yaml:"count"`
	Activity    Activity `json:"activeOrPassive" yaml:"activeOrPassive"`
	Key         KeyFlag  `json:"key" yaml:"key"`
}

// IsKey reports whether the item is protected from deletion
func (i Item) IsKey() bool {
	return i.Key == KeyItem
}

// RecordName implements Record
func (i Item) RecordName() string { return i.Name }

// Fields implements Record
func (i Item) Fields() []Field {
	return []Field{
		{Label: FieldName, Value: i.Name},
		{Label: FieldDescription, Value: i.Description},
		{Label: FieldCount, Value: strconv.Itoa(i.Count)},
		{Label: FieldActivity, Value: string(i.Activity)},
		{Label: FieldKey, Value: string(i.Key)},
	}
}

// UnmarshalJSON reads an item leniently. Count may be a number or a numeric
// string, since older inventory files stored whatever the form field
// produced, and the prototype's "desc" key stands in for a missing
// description. A field of the wrong type is kept as text or zeroed instead of
// failing the whole inventory.
func (i *Item) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*i = Item{
		Name:        looseString(fields["name"]),
		Description: looseString(fields["description"]),
		Count:       looseInt(fields["count"]),
		Activity:    Activity(looseString(fields["activeOrPassive"])),
		Key:         KeyFlag(looseString(fields["key"])),
	}
	if i.Description == "" {
		i.Description = looseString(fields[legacyDescriptionKey])
	}
	return nil
}
