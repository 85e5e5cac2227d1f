package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON holds schemaless structured values (settings payloads, event detail).
type JSON map[string]interface{}

// Value implements driver.Valuer.
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, isString := value.(string); isString {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, j)
}

// AddonSelection is the frozen per-addon breakdown stored on an order line.
type AddonSelection struct {
	AddonID   uint   `json:"addon_id"`   // addon reference
	Name      string `json:"name"`       // name snapshot at order time
	UnitPrice Money  `json:"unit_price"` // effective price at order time
	Quantity  int    `json:"quantity"`   // selected quantity
	Subtotal  Money  `json:"subtotal"`   // unit_price * quantity
}

// AddonSelections is a JSON column of addon breakdowns.
type AddonSelections []AddonSelection

// Value implements driver.Valuer.
func (s AddonSelections) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *AddonSelections) Scan(value interface{}) error {
	if value == nil {
		*s = AddonSelections{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, isString := value.(string); isString {
			bytes = []byte(str)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, s)
}
