// Package parameters handles configuration strings of the form "name:key1=value1,key2,...".
//
// They are used to select and configure pluggable implementations (see package cellset) from a single flag.
package parameters

import (
	"github.com/janpfeifer/droplet/internal/generics"
	"github.com/pkg/errors"
	"slices"
	"strconv"
	"strings"
)

// Params represent generic configuration parameters: key -> value. A key given without a value maps to "".
type Params map[string]string

// Parse splits config into the leading name and its parameters.
//
// The name is everything before the first ":", and the parameters are a comma-separated list of
// "key=value" or "key" after it. Empty entries (e.g. trailing commas) are ignored. Spaces around names,
// keys and values are trimmed.
func Parse(config string) (name string, params Params, err error) {
	name, rest, _ := strings.Cut(config, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, errors.Errorf("missing name in configuration %q", config)
	}
	params = make(Params)
	for _, part := range strings.Split(rest, ",") {
		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			if strings.TrimSpace(value) != "" {
				return "", nil, errors.Errorf("value %q without key in configuration %q", value, config)
			}
			continue
		}
		if _, found := params[key]; found {
			return "", nil, errors.Errorf("parameter %q given twice in configuration %q", key, config)
		}
		params[key] = strings.TrimSpace(value)
	}
	return name, params, nil
}

// Value types supported by GetParamOr and PopParamOr.
type Value interface {
	bool | int | int64 | float64 | string
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var result any
	var err error
	switch any(defaultValue).(type) {
	case string:
		result = value
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			result = true
		case "false", "0":
			result = false
		default:
			err = errors.Errorf("invalid bool")
		}
	case int:
		result, err = strconv.Atoi(value)
	case int64:
		result, err = strconv.ParseInt(value, 0, 64)
	case float64:
		result, err = strconv.ParseFloat(value, 64)
	}
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse parameter %s=%q as %T", key, value, defaultValue)
	}
	return result.(T), nil
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// CheckAllUsed returns an error listing any parameters left in params. Use it after popping
// all the known parameters, to catch typos in the configuration.
func (params Params) CheckAllUsed() error {
	if len(params) == 0 {
		return nil
	}
	keys := generics.KeysSlice(params)
	slices.Sort(keys)
	return errors.Errorf("unknown parameters \"%s\"", strings.Join(keys, "\", \""))
}
