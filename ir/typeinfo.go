package ir

// Kind identifies the JSON Schema type of a TypeInfo node.
//
// See: https://spec.openapis.org/oas/v3.1.0#data-types
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindNull    Kind = "null"
)

// TypeInfo is a recursive schema node: a scalar, an array, or an object
// with named children. Object nodes exclusively own their children tree;
// the tree is acyclic by construction.
//
// A nil children map is distinct from an empty one: an empty map means
// "explicitly an object with no known properties yet" and still emits a
// properties key, while nil means no properties were recorded at all.
//
// See: https://spec.openapis.org/oas/v3.1.0#schema-object
type TypeInfo struct {
	kind     Kind
	format   string
	children map[string]*TypeInfo
}

// NewTypeInfo creates a schema node with the given kind, children, and
// format. Children are kept only for object nodes; a non-object kind
// never carries children.
func NewTypeInfo(kind Kind, children map[string]*TypeInfo, format string) *TypeInfo {
	t := &TypeInfo{kind: kind, format: format}
	if kind == KindObject {
		t.children = children
	}

	return t
}

// StringType creates a plain string node.
func StringType() *TypeInfo {
	return &TypeInfo{kind: KindString}
}

// FormattedStringType creates a string node carrying a named format
// such as "email", "uuid", or "date-time".
func FormattedStringType(format string) *TypeInfo {
	return &TypeInfo{kind: KindString, format: format}
}

// IntegerType creates an integer node.
func IntegerType() *TypeInfo {
	return &TypeInfo{kind: KindInteger}
}

// NumberType creates a number node.
func NumberType() *TypeInfo {
	return &TypeInfo{kind: KindNumber}
}

// BooleanType creates a boolean node.
func BooleanType() *TypeInfo {
	return &TypeInfo{kind: KindBoolean}
}

// ArrayType creates an array node.
func ArrayType() *TypeInfo {
	return &TypeInfo{kind: KindArray}
}

// NullType creates a null node.
func NullType() *TypeInfo {
	return &TypeInfo{kind: KindNull}
}

// ObjectType creates an object node with the given named children.
// A nil map is normalized to an empty one, marking the node as
// explicitly an object whose properties are not known yet.
func ObjectType(children map[string]*TypeInfo) *TypeInfo {
	if children == nil {
		children = map[string]*TypeInfo{}
	}

	return &TypeInfo{kind: KindObject, children: children}
}

// Kind returns the node's schema kind.
func (t *TypeInfo) Kind() Kind {
	return t.kind
}

// Format returns the node's format, or an empty string when unset.
func (t *TypeInfo) Format() string {
	return t.format
}

// Children returns the node's named children, or nil when none were
// recorded. Callers must not mutate the returned map.
func (t *TypeInfo) Children() map[string]*TypeInfo {
	return t.children
}

// IsObject reports whether the node is an object.
func (t *TypeInfo) IsObject() bool {
	return t.kind == KindObject
}

// IsArray reports whether the node is an array.
func (t *TypeInfo) IsArray() bool {
	return t.kind == KindArray
}

// IsScalar reports whether the node is a scalar kind: string, integer,
// number, or boolean. Object, array, and null nodes are not scalars.
func (t *TypeInfo) IsScalar() bool {
	switch t.kind {
	case KindString, KindInteger, KindNumber, KindBoolean:
		return true
	}

	return false
}

// HasFormat reports whether the node carries a format.
func (t *TypeInfo) HasFormat() bool {
	return t.format != ""
}

// HasChildren reports whether a children map was recorded, including the
// explicitly-empty case.
func (t *TypeInfo) HasChildren() bool {
	return t.children != nil
}

// ToKeyed converts the node and its children tree to the keyed form.
// The type key is always present; format only when set; properties only
// when a children map was recorded, so an explicitly-empty object still
// emits an empty properties map.
func (t *TypeInfo) ToKeyed() Keyed {
	data := Keyed{"type": string(t.kind)}

	if t.format != "" {
		data["format"] = t.format
	}

	if t.children != nil {
		props := make(Keyed, len(t.children))
		for name, child := range t.children {
			props[name] = child.ToKeyed()
		}
		data["properties"] = props
	}

	return data
}

// TypeInfoFromKeyed rebuilds a schema node from keyed data. A missing
// type defaults to "string". Properties are read only when the node is an
// object and the value under the key is itself a keyed container; any
// other shape is ignored, leaving children absent rather than failing the
// whole document for one malformed fragment. Each property entry may be
// an already-built *TypeInfo or a keyed fragment.
func TypeInfoFromKeyed(data Keyed) *TypeInfo {
	t := &TypeInfo{
		kind:   Kind(stringField(data, "type", string(KindString))),
		format: stringField(data, "format", ""),
	}

	if t.kind != KindObject {
		return t
	}

	props, ok := asKeyed(data["properties"])
	if !ok {
		return t
	}

	t.children = make(map[string]*TypeInfo, len(props))
	for name, raw := range props {
		if child, ok := CoerceTypeInfo(raw); ok {
			t.children[name] = child
		}
	}

	return t
}

// CoerceTypeInfo resolves the dual input shape accepted at every keyed
// boundary: an already-built node passes through unchanged, a keyed
// fragment is converted recursively, and anything else reports no match.
func CoerceTypeInfo(v any) (*TypeInfo, bool) {
	switch tv := v.(type) {
	case *TypeInfo:
		return tv, true
	case TypeInfo:
		return &tv, true
	}

	if data, ok := asKeyed(v); ok {
		return TypeInfoFromKeyed(data), true
	}

	return nil, false
}
