package querycache

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Params carries the full set of named filter/pagination parameters of a
// cacheable query. Absent parameters are included with a nil value so that
// "filter not given" and "filter set to zero" derive different keys.
type Params map[string]any

// DeriveKey maps an endpoint identifier plus a parameter set to a stable
// cache key of the form "endpoint:<16 hex digest chars>".
//
// The parameter set is serialized into a canonical byte sequence first
// (names sorted, one fixed textual rendering per value type), so the key is
// independent of insertion order, map iteration order and process restarts.
// An unsupported value type is a key-derivation error and fails the request.
func DeriveKey(endpoint string, params Params) (string, error) {
	if endpoint == "" {
		return "", fmt.Errorf("derive key: empty endpoint")
	}

	canonical, err := canonicalize(params)
	if err != nil {
		return "", err
	}

	digest := xxhash.Sum64String(canonical)
	return fmt.Sprintf("%s:%016x", endpoint, digest), nil
}

// String values are the only renderings that can contain the canonical
// delimiter bytes, so those are percent-escaped. Otherwise a value like
// "pending&payment_method=paypal" would alias a second parameter pair.
var delimEscaper = strings.NewReplacer(
	"%", "%25",
	"&", "%26",
	"=", "%3D",
	"[", "%5B",
	"]", "%5D",
	",", "%2C",
)

func canonicalize(params Params) (string, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		rendered, err := renderValue(params[name])
		if err != nil {
			return "", fmt.Errorf("derive key: parameter %q: %w", name, err)
		}
		b.WriteString(rendered)
	}
	return b.String(), nil
}

// renderValue produces the single canonical textual form of a parameter
// value. Pointers are dereferenced so callers can pass optional filters
// straight from their filter structs; nil (typed or untyped) renders as
// "null", distinct from "", "0" and "false".
func renderValue(v any) (string, error) {
	if v == nil {
		return "null", nil
	}

	switch val := v.(type) {
	case string:
		return delimEscaper.Replace(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.FormatInt(int64(val), 10), nil
	case int8:
		return strconv.FormatInt(int64(val), 10), nil
	case int16:
		return strconv.FormatInt(int64(val), 10), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		// shortest exact decimal, identical on every platform
		return strconv.FormatFloat(float64(val), 'f', -1, 64), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case time.Time:
		return val.UTC().Format(time.RFC3339), nil
	case uuid.UUID:
		return val.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return "null", nil
		}
		return renderValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		// element order is semantically significant and preserved
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			rendered, err := renderValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = rendered
		}
		return "[" + strings.Join(parts, ",") + "]", nil
	}

	return "", fmt.Errorf("unsupported value type %T", v)
}
