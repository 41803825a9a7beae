package ir

import "fmt"

// EnumBackingType is the closed set of scalar kinds an enumerated
// parameter may be backed by. The wire tag for EnumBackingInteger is
// "int", not "integer"; OpenAPIType performs that translation.
type EnumBackingType int

const (
	EnumBackingString EnumBackingType = iota
	EnumBackingInteger
)

// Tag returns the literal wire tag ("string" or "int").
func (b EnumBackingType) Tag() string {
	if b == EnumBackingInteger {
		return "int"
	}

	return "string"
}

// OpenAPIType returns the OpenAPI primitive type name ("string" or
// "integer"). Note the integer case differs from the wire tag.
func (b EnumBackingType) OpenAPIType() string {
	if b == EnumBackingInteger {
		return "integer"
	}

	return "string"
}

// String returns the wire tag.
func (b EnumBackingType) String() string {
	return b.Tag()
}

// TryParseEnumBackingType parses a wire tag leniently, reporting no
// match for anything outside the closed set.
func TryParseEnumBackingType(tag string) (EnumBackingType, bool) {
	switch tag {
	case "string":
		return EnumBackingString, true
	case "int":
		return EnumBackingInteger, true
	}

	return EnumBackingString, false
}

// ParseEnumBackingType parses a wire tag strictly. An unknown tag is a
// programming or data error, not a user-input error; callers needing
// leniency must use TryParseEnumBackingType.
func ParseEnumBackingType(tag string) (EnumBackingType, error) {
	if b, ok := TryParseEnumBackingType(tag); ok {
		return b, nil
	}

	return EnumBackingString, fmt.Errorf("unknown enum backing type %q", tag)
}
