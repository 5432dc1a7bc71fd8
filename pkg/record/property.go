package record

import (
	"math"

	"github.com/go-drift/reactive/pkg/errors"
)

// Property identifiers for string-keyed access. The set is closed: these two
// identifiers are the record's entire property surface.
const (
	// PropValue is the integer value property.
	PropValue = "value"
	// PropName is the optional name property.
	PropName = "name"
)

// Properties returns the record property identifiers in declaration order.
func Properties() []string {
	return []string{PropValue, PropName}
}

// Get returns the property with the given identifier. The value property
// yields an int32; the name property yields a string, or nil when the name
// is absent. Unknown identifiers return an error of kind KindProperty.
func (r *Record) Get(property string) (any, error) {
	r.checkAlive("Get")
	switch property {
	case PropValue:
		return r.value, nil
	case PropName:
		if !r.hasName {
			return nil, nil
		}
		return r.name, nil
	default:
		return nil, &errors.Error{
			Op:       "record.Get",
			Kind:     errors.KindProperty,
			Property: property,
			Err:      &errors.UnknownPropertyError{Property: property},
		}
	}
}

// Set assigns the property with the given identifier, routing through
// SetValue and SetName so the notification contract holds. The value
// property accepts int, int32, or int64 within the int32 range. The name
// property accepts a string, or nil to clear it. Unknown identifiers and
// mismatched types return structured errors.
func (r *Record) Set(property string, value any) error {
	r.checkAlive("Set")
	switch property {
	case PropValue:
		v, ok := toInt32(value)
		if !ok {
			return &errors.Error{
				Op:       "record.Set",
				Kind:     errors.KindType,
				Property: property,
				Err:      &errors.TypeError{Property: property, Want: "int32", Got: value},
			}
		}
		r.SetValue(v)
		return nil
	case PropName:
		if value == nil {
			r.ClearName()
			return nil
		}
		name, ok := value.(string)
		if !ok {
			return &errors.Error{
				Op:       "record.Set",
				Kind:     errors.KindType,
				Property: property,
				Err:      &errors.TypeError{Property: property, Want: "string", Got: value},
			}
		}
		r.SetName(name)
		return nil
	default:
		return &errors.Error{
			Op:       "record.Set",
			Kind:     errors.KindProperty,
			Property: property,
			Err:      &errors.UnknownPropertyError{Property: property},
		}
	}
}

// toInt32 converts the supported numeric types to int32, rejecting values
// outside the int32 range.
func toInt32(v any) (int32, bool) {
	switch n := v.(type) {
	case int32:
		return n, true
	case int:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int32(n), true
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int32(n), true
	default:
		return 0, false
	}
}
