package ir

// Parameter locations accepted by EnumParameterInfo.
const (
	LocationPath  = "path"
	LocationQuery = "query"
)

// EnumParameterInfo describes one enumerated request parameter: its
// location, ordered literal values, and backing primitive type. The Type
// field holds the OpenAPI primitive name ("string" or "integer"), not
// the EnumBackingType wire tag.
//
// Values may hold string or integer literals depending on the backing
// type; whether the literals match the declared type is the analyzer's
// concern, not this component's.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object
type EnumParameterInfo struct {
	Name        string
	Type        string
	Values      []any
	Required    bool
	Description string
	In          string

	// EnumClass names the source enum type the parameter originated
	// from, when known.
	EnumClass string
}

// NewEnumParameterInfo creates a parameter with the documented defaults:
// string-backed, required, located in the path.
func NewEnumParameterInfo(name string, values ...any) EnumParameterInfo {
	return EnumParameterInfo{
		Name:     name,
		Type:     EnumBackingString.OpenAPIType(),
		Values:   values,
		Required: true,
		In:       LocationPath,
	}
}

// IsPath reports whether the parameter lives in the request path.
func (p EnumParameterInfo) IsPath() bool {
	return p.In == LocationPath
}

// IsQuery reports whether the parameter lives in the query string.
func (p EnumParameterInfo) IsQuery() bool {
	return p.In == LocationQuery
}

// IsStringBacked reports whether the parameter is backed by strings.
func (p EnumParameterInfo) IsStringBacked() bool {
	return p.Type == EnumBackingString.OpenAPIType()
}

// IsIntegerBacked reports whether the parameter is backed by integers.
func (p EnumParameterInfo) IsIntegerBacked() bool {
	return p.Type == EnumBackingInteger.OpenAPIType()
}

// ToKeyed converts the parameter to the keyed form. The enumClass key is
// present only when the originating type name is known.
func (p EnumParameterInfo) ToKeyed() Keyed {
	data := Keyed{
		"name":        p.Name,
		"type":        p.Type,
		"enum":        p.enumValues(),
		"required":    p.Required,
		"description": p.Description,
		"in":          p.In,
	}

	if p.EnumClass != "" {
		data["enumClass"] = p.EnumClass
	}

	return data
}

func (p EnumParameterInfo) enumValues() []any {
	if len(p.Values) == 0 {
		return nil
	}

	out := make([]any, len(p.Values))
	copy(out, p.Values)

	return out
}

// EnumParameterInfoFromKeyed rebuilds a parameter from keyed data,
// applying the documented defaults for missing fields: type "string",
// required true, location "path", empty description.
func EnumParameterInfoFromKeyed(data Keyed) EnumParameterInfo {
	return EnumParameterInfo{
		Name:        stringField(data, "name", ""),
		Type:        stringField(data, "type", EnumBackingString.OpenAPIType()),
		Values:      anySliceField(data, "enum"),
		Required:    boolField(data, "required", true),
		Description: stringField(data, "description", ""),
		In:          stringField(data, "in", LocationPath),
		EnumClass:   stringField(data, "enumClass", ""),
	}
}
