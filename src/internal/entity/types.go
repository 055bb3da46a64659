package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a JSON array in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	out, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(out), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}
