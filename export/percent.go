package export

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch marks a non-numeric value passed where a number is
// required.
var ErrTypeMismatch = errors.New("numeric type required")

// AsPercent formats a numeric value as a percentage string:
// AsPercent(0.5) == "50.00%". precision overrides the default "0.2"
// width/precision pair. Non-numeric values fail with ErrTypeMismatch.
func AsPercent(v any, precision ...string) (string, error) {
	prec := "0.2"
	if len(precision) > 0 && precision[0] != "" {
		prec = precision[0]
	}

	f, ok := toFloat(v)
	if !ok {
		return "", fmt.Errorf("cannot format %T as percent: %w", v, ErrTypeMismatch)
	}
	return fmt.Sprintf("%"+prec+"f%%", f*100), nil
}

func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
