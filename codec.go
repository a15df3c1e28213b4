package optional

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Host-side representations of optionality. The pointer conversions are the
// boundary to Go's native optional type; the marshalling hooks map None to
// null for JSON, YAML and SQL so that options embed into config and record
// structs without wrapper fields.

// Static interface conformance checks.
var (
	_ json.Marshaler   = Option[bool]{}
	_ json.Unmarshaler = &Option[bool]{}
	_ yaml.Marshaler   = Option[bool]{}
	_ yaml.Unmarshaler = &Option[bool]{}
	_ sql.Scanner      = &Option[bool]{}
	_ driver.Valuer    = Option[bool]{}
)

// AsPointer converts an option into Go's native nullable representation:
// nil for None, a pointer to a copy of the value for Some. The inverse of
// FromPointer.
func (o Option[T]) AsPointer() *T {
	if o.present {
		v := o.value
		return &v
	}
	return nil
}

// IsZero reports whether the option is None. It implements the IsZeroer
// interface consulted by encoding/json for the `omitzero` tag and by yaml
// for `omitempty`.
func (o Option[T]) IsZero() bool {
	return !o.present
}

// MarshalJSON encodes the contained value, or null for None.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and any other JSON value as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var p *T
	if err := json.Unmarshal(data, &p); err != nil {
		tracer().Debugf("optional value does not decode from JSON: %v", err)
		return err
	}
	*o = FromPointer(p)
	return nil
}

// MarshalYAML encodes the contained value, or null for None.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.present {
		return nil, nil
	}
	// The yaml encoder does not look for Marshaler on a value returned from
	// MarshalYAML, so a contained marshaler has to be unpacked here.
	if m, ok := any(o.value).(yaml.Marshaler); ok {
		return m.MarshalYAML()
	}
	return o.value, nil
}

// UnmarshalYAML decodes a null node as None and any other node as Some.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		tracer().Debugf("optional value does not decode from YAML: %v", err)
		return err
	}
	*o = Some(v)
	return nil
}

// Scan implements database/sql.Scanner: an SQL NULL scans to None, every
// other column value to Some.
func (o *Option[T]) Scan(src any) error {
	var null sql.Null[T]
	if err := null.Scan(src); err != nil {
		tracer().Debugf("optional value does not scan from SQL: %v", err)
		return err
	}
	*o = FromOk(null.V, null.Valid)
	return nil
}

// Value implements database/sql/driver.Valuer: None becomes an SQL NULL.
func (o Option[T]) Value() (driver.Value, error) {
	if !o.present {
		return nil, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(o.value)
}
