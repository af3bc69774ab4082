package utils

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

const dateTimeLayout string = "2006-01-02 15:04:05"

// FormatValue renders a single column value coming from either database driver.
func FormatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(dateTimeLayout)
	case driver.Valuer:
		dv, err := v.Value()
		if err != nil {
			return ""
		}
		return FormatValue(dv)
	case fmt.Stringer:
		return v.String()
	}

	return formatReflectValue(reflect.ValueOf(value))
}

func formatReflectValue(value reflect.Value) string {
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface:
		if value.IsNil() {
			return ""
		}
		return FormatValue(value.Elem().Interface())
	case reflect.String:
		return value.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(value.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(value.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(value.Bool())
	default:
		return fmt.Sprint(value.Interface())
	}
}

func ToSecondsDuration(secs int64) time.Duration {
	return time.Duration(secs) * time.Second
}
