// Package ir provides the typed intermediate representation used by the
// routedoc documentation generator to describe OpenAPI-compatible schema
// fragments: scalar and object type trees, enum-backed parameters,
// authentication schemes with per-route bindings, callback descriptors,
// document metadata, and tag groupings.
//
// Every value in the package is immutable after construction and free of
// I/O, so all operations are safe to call concurrently without
// coordination.
//
// # Keyed Representation
//
// Each component converts to and from a generic Keyed form, the wire
// contract shared with the route analyzer and the document emitter:
//
//	schema := ir.ObjectType(map[string]*ir.TypeInfo{
//	    "id":    ir.FormattedStringType("uuid"),
//	    "email": ir.FormattedStringType("email"),
//	    "age":   ir.IntegerType(),
//	})
//	data := schema.ToKeyed()
//	same := ir.TypeInfoFromKeyed(data)
//
// Round-trip fidelity holds for every legal value: converting to the keyed
// form and back yields an equivalent value, which the emitter relies on
// when caching and re-emitting fragments.
//
// # Dual-Shape Input
//
// Analyzer output may arrive as fully-typed IR values or as generic keyed
// data recovered from a cache file. Every FromKeyed function accepts both
// shapes for any nested field that itself corresponds to an IR component:
//
//	ir.RouteAuthenticationFromKeyed(ir.Keyed{
//	    "scheme":     scheme, // *AuthenticationScheme or Keyed fragment
//	    "middleware": []string{"auth:sanctum"},
//	})
//
// # Error Handling
//
// Missing fields resolve to documented defaults and malformed nested
// fields are silently ignored, never failing the whole document for one
// bad fragment. Closed enumerations expose a lenient parse returning an
// explicit no-match result and a strict parse returning an error.
//
// See: https://spec.openapis.org/oas/v3.1.0
package ir
