package ir

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"
)

// DecodeKeyedJSON parses a JSON document into the keyed form. The top
// level must be a JSON object; nested objects become Keyed, arrays
// become []any, and integral numbers become int so route indices and
// enum literals keep their natural type.
func DecodeKeyedJSON(b []byte) (Keyed, error) {
	v, err := fastjson.ParseBytes(b)
	if err != nil {
		return nil, err
	}

	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("keyed data must be a JSON object: %w", err)
	}

	return keyedFromObject(obj), nil
}

// EncodeKeyedJSON serializes keyed data as JSON.
func EncodeKeyedJSON(data Keyed) ([]byte, error) {
	return json.Marshal(data)
}

// DecodeKeyedYAML parses a YAML document into the keyed form. The top
// level must be a mapping.
func DecodeKeyedYAML(b []byte) (Keyed, error) {
	var data Keyed
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// EncodeKeyedYAML serializes keyed data as YAML.
func EncodeKeyedYAML(data Keyed) ([]byte, error) {
	return yaml.Marshal(data)
}

func keyedFromObject(obj *fastjson.Object) Keyed {
	data := make(Keyed, obj.Len())
	obj.Visit(func(key []byte, v *fastjson.Value) {
		data[string(key)] = valueFromFastJSON(v)
	})

	return data
}

func valueFromFastJSON(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil
		}
		return keyedFromObject(obj)

	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, valueFromFastJSON(item))
		}
		return out

	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil
		}
		return string(b)

	case fastjson.TypeNumber:
		if n, err := v.Int(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f

	case fastjson.TypeTrue:
		return true

	case fastjson.TypeFalse:
		return false
	}

	return nil
}
