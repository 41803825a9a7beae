// Package oas converts IR values to kin-openapi fragments for consumers
// embedded in a kin-openapi pipeline. It produces per-fragment openapi3
// values only; assembling and writing a complete document is the
// emitter's job, not this package's.
package oas

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/routedoc/routedoc/ir"
)

// Schema converts a schema node and its children tree to an openapi3
// schema. An explicitly-empty object keeps a non-nil empty properties
// map so the distinction survives conversion. Returns nil for nil input.
func Schema(t *ir.TypeInfo) *openapi3.Schema {
	if t == nil {
		return nil
	}

	schema := &openapi3.Schema{
		Type:   string(t.Kind()),
		Format: t.Format(),
	}

	if t.HasChildren() {
		schema.Properties = make(openapi3.Schemas, len(t.Children()))
		for name, child := range t.Children() {
			schema.Properties[name] = openapi3.NewSchemaRef("", Schema(child))
		}
	}

	return schema
}

// Parameter converts an enumerated parameter to an openapi3 parameter
// with an enum-constrained schema.
func Parameter(p ir.EnumParameterInfo) *openapi3.Parameter {
	return &openapi3.Parameter{
		Name:        p.Name,
		In:          p.In,
		Description: p.Description,
		Required:    p.Required,
		Schema: openapi3.NewSchemaRef("", &openapi3.Schema{
			Type: p.Type,
			Enum: p.Values,
		}),
	}
}

// SecurityScheme converts an authentication scheme to an openapi3
// security scheme. Returns nil for nil input.
func SecurityScheme(s *ir.AuthenticationScheme) *openapi3.SecurityScheme {
	if s == nil {
		return nil
	}

	return &openapi3.SecurityScheme{
		Type:         s.Type.Tag(),
		Scheme:       s.Scheme,
		BearerFormat: s.BearerFormat,
		Description:  s.Description,
	}
}

// SecuritySchemes converts every scheme in a result to the
// components.securitySchemes mapping.
func SecuritySchemes(result *ir.AuthenticationResult) openapi3.SecuritySchemes {
	schemes := make(openapi3.SecuritySchemes, result.SchemeCount())
	for _, name := range result.SchemeNames() {
		scheme, _ := result.Scheme(name)
		schemes[name] = &openapi3.SecuritySchemeRef{Value: SecurityScheme(scheme)}
	}

	return schemes
}

// SecurityRequirements returns the per-operation security requirements
// for one route binding. Unbound routes yield nil. Optional bindings
// include an empty requirement alternative, the OpenAPI idiom for
// authentication that may be skipped.
func SecurityRequirements(result *ir.AuthenticationResult, index int) openapi3.SecurityRequirements {
	ra, ok := result.RouteAuthentication(index)
	if !ok || ra.SchemeName() == "" {
		return nil
	}

	reqs := openapi3.SecurityRequirements{{ra.SchemeName(): {}}}
	if !ra.IsRequired() {
		reqs = append(reqs, openapi3.SecurityRequirement{})
	}

	return reqs
}

// Info converts document metadata to an openapi3 info object. Absent
// optional fields stay unset so omitempty drops them on serialization.
func Info(info ir.OpenApiInfo) *openapi3.Info {
	out := &openapi3.Info{
		Title:       info.Title,
		Version:     info.Version,
		Description: info.Description,
	}

	if info.HasTermsOfService() {
		out.TermsOfService = *info.TermsOfService
	}

	if info.HasContact() {
		out.Contact = &openapi3.Contact{
			Name:  keyedString(info.Contact, "name"),
			URL:   keyedString(info.Contact, "url"),
			Email: keyedString(info.Contact, "email"),
		}
	}

	if info.HasLicense() {
		out.License = &openapi3.License{
			Name: keyedString(info.License, "name"),
			URL:  keyedString(info.License, "url"),
		}
	}

	return out
}

// Tags collects the distinct tag labels across all groups into a sorted
// openapi3 tag list.
func Tags(groups []ir.TagGroup) openapi3.Tags {
	seen := make(map[string]bool)
	var labels []string
	for _, g := range groups {
		for _, label := range g.Tags {
			if !seen[label] {
				seen[label] = true
				labels = append(labels, label)
			}
		}
	}
	sort.Strings(labels)

	tags := make(openapi3.Tags, 0, len(labels))
	for _, label := range labels {
		tags = append(tags, &openapi3.Tag{Name: label})
	}

	return tags
}

// TagGroupsExtension returns the x-tagGroups extension value: one entry
// per group, in the given order.
func TagGroupsExtension(groups []ir.TagGroup) []any {
	out := make([]any, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.ToKeyed())
	}

	return out
}

func keyedString(data ir.Keyed, key string) string {
	s, _ := data[key].(string)

	return s
}
