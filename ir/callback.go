package ir

// CallbackInfo describes an out-of-band callback an API may initiate: a
// webhook-style request identified by a runtime expression.
//
// RequestBody and Responses are opaque schema fragments passed through
// unparsed; they are expected to be TypeInfo-shaped or keyed data
// produced upstream, but their internal shape is not validated here.
// Optional fields use pointers so "not specified" stays distinct from
// "specified as empty".
//
// See: https://spec.openapis.org/oas/v3.1.0#callback-object
type CallbackInfo struct {
	Name        string
	Expression  string
	Method      string
	RequestBody any
	Responses   any
	Description *string
	Summary     *string

	// Ref names a reusable callback component, when one exists.
	Ref *string
}

// NewCallbackInfo creates a callback with the default "post" method and
// every optional field absent.
func NewCallbackInfo(name, expression string) *CallbackInfo {
	return &CallbackInfo{
		Name:       name,
		Expression: expression,
		Method:     "post",
	}
}

// HasRef reports whether a reusable-component reference was specified.
func (c *CallbackInfo) HasRef() bool {
	return c.Ref != nil
}

// HasRequestBody reports whether a request-body fragment was specified.
func (c *CallbackInfo) HasRequestBody() bool {
	return c.RequestBody != nil
}

// HasResponses reports whether a response-map fragment was specified.
func (c *CallbackInfo) HasResponses() bool {
	return c.Responses != nil
}

// ToKeyed converts the callback to the keyed form. Name, expression, and
// method are always emitted; every optional field is emitted only when
// present, never as a null or empty placeholder.
func (c *CallbackInfo) ToKeyed() Keyed {
	data := Keyed{
		"name":       c.Name,
		"expression": c.Expression,
		"method":     c.Method,
	}

	if c.RequestBody != nil {
		data["requestBody"] = c.RequestBody
	}
	if c.Responses != nil {
		data["responses"] = c.Responses
	}
	if c.Description != nil {
		data["description"] = *c.Description
	}
	if c.Summary != nil {
		data["summary"] = *c.Summary
	}
	if c.Ref != nil {
		data["ref"] = *c.Ref
	}

	return data
}

// CallbackInfoFromKeyed rebuilds a callback from keyed data. Method
// defaults to "post"; absent optional fields stay absent.
func CallbackInfoFromKeyed(data Keyed) *CallbackInfo {
	c := &CallbackInfo{
		Name:        stringField(data, "name", ""),
		Expression:  stringField(data, "expression", ""),
		Method:      stringField(data, "method", "post"),
		RequestBody: data["requestBody"],
		Responses:   data["responses"],
	}

	if s, ok := data["description"].(string); ok {
		c.Description = &s
	}
	if s, ok := data["summary"].(string); ok {
		c.Summary = &s
	}
	if s, ok := data["ref"].(string); ok {
		c.Ref = &s
	}

	return c
}
