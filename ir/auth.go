package ir

import (
	"fmt"
	"sort"
	"strconv"
)

// AuthenticationType is the closed set of authentication mechanisms the
// IR can describe. Only HTTP-scheme based authentication exists today;
// the set is closed but designed to grow.
type AuthenticationType int

const (
	AuthTypeHTTP AuthenticationType = iota
)

// Tag returns the literal wire tag ("http").
func (t AuthenticationType) Tag() string {
	return "http"
}

// String returns the wire tag.
func (t AuthenticationType) String() string {
	return t.Tag()
}

// TryParseAuthenticationType parses a wire tag leniently, reporting no
// match for anything outside the closed set.
func TryParseAuthenticationType(tag string) (AuthenticationType, bool) {
	if tag == "http" {
		return AuthTypeHTTP, true
	}

	return AuthTypeHTTP, false
}

// ParseAuthenticationType parses a wire tag strictly. An unknown tag is
// a programming or data error; callers needing leniency must use
// TryParseAuthenticationType.
func ParseAuthenticationType(tag string) (AuthenticationType, error) {
	if t, ok := TryParseAuthenticationType(tag); ok {
		return t, nil
	}

	return AuthTypeHTTP, fmt.Errorf("unknown authentication type %q", tag)
}

// AuthenticationScheme is a named security-scheme descriptor. The name
// is the lookup key in AuthenticationResult's scheme mapping.
//
// See: https://spec.openapis.org/oas/v3.1.0#security-scheme-object
type AuthenticationScheme struct {
	Type         AuthenticationType
	Name         string
	Scheme       string
	BearerFormat string
	Description  string
}

// NewAuthenticationScheme creates an HTTP-type scheme with the given
// name and scheme string (e.g. "bearer", "basic").
func NewAuthenticationScheme(name, scheme string) *AuthenticationScheme {
	return &AuthenticationScheme{
		Type:   AuthTypeHTTP,
		Name:   name,
		Scheme: scheme,
	}
}

// ToKeyed converts the scheme to the keyed form. Bearer format and
// description are emitted only when set.
func (s *AuthenticationScheme) ToKeyed() Keyed {
	data := Keyed{
		"type":   s.Type.Tag(),
		"name":   s.Name,
		"scheme": s.Scheme,
	}

	if s.BearerFormat != "" {
		data["bearerFormat"] = s.BearerFormat
	}
	if s.Description != "" {
		data["description"] = s.Description
	}

	return data
}

// AuthenticationSchemeFromKeyed rebuilds a scheme from keyed data. The
// type tag is parsed leniently; an unknown tag degrades to HTTP rather
// than failing.
func AuthenticationSchemeFromKeyed(data Keyed) *AuthenticationScheme {
	authType, _ := TryParseAuthenticationType(stringField(data, "type", "http"))

	return &AuthenticationScheme{
		Type:         authType,
		Name:         stringField(data, "name", ""),
		Scheme:       stringField(data, "scheme", ""),
		BearerFormat: stringField(data, "bearerFormat", ""),
		Description:  stringField(data, "description", ""),
	}
}

// CoerceAuthenticationScheme resolves the dual input shape for scheme
// fields: an already-built scheme passes through, a keyed fragment is
// converted, anything else reports no match.
func CoerceAuthenticationScheme(v any) (*AuthenticationScheme, bool) {
	switch sv := v.(type) {
	case *AuthenticationScheme:
		return sv, true
	case AuthenticationScheme:
		return &sv, true
	}

	if data, ok := asKeyed(v); ok {
		return AuthenticationSchemeFromKeyed(data), true
	}

	return nil, false
}

// RouteAuthentication binds one route to a scheme plus the middleware
// chain that enforces it. The scheme is held by reference: multiple
// routes may share one scheme instance, which is safe because schemes
// are immutable.
type RouteAuthentication struct {
	Scheme     *AuthenticationScheme
	Middleware []string
	Required   bool
}

// NewRouteAuthentication creates a required binding for the given scheme
// and middleware chain.
func NewRouteAuthentication(scheme *AuthenticationScheme, middleware ...string) *RouteAuthentication {
	var chain []string
	if len(middleware) > 0 {
		chain = append(chain, middleware...)
	}

	return &RouteAuthentication{
		Scheme:     scheme,
		Middleware: chain,
		Required:   true,
	}
}

// IsRequired reports whether authentication is mandatory for the route.
func (r *RouteAuthentication) IsRequired() bool {
	return r.Required
}

// SchemeName returns the held scheme's name, or an empty string when no
// scheme is bound.
func (r *RouteAuthentication) SchemeName() string {
	if r.Scheme == nil {
		return ""
	}

	return r.Scheme.Name
}

// HasMiddleware reports whether the exact middleware identifier appears
// in the chain.
func (r *RouteAuthentication) HasMiddleware(name string) bool {
	for _, m := range r.Middleware {
		if m == name {
			return true
		}
	}

	return false
}

// ToKeyed converts the binding to the keyed form. The scheme key is
// emitted only when a scheme is bound.
func (r *RouteAuthentication) ToKeyed() Keyed {
	data := Keyed{
		"middleware": r.middlewareChain(),
		"required":   r.Required,
	}

	if r.Scheme != nil {
		data["scheme"] = r.Scheme.ToKeyed()
	}

	return data
}

func (r *RouteAuthentication) middlewareChain() []string {
	if len(r.Middleware) == 0 {
		return nil
	}

	out := make([]string, len(r.Middleware))
	copy(out, r.Middleware)

	return out
}

// RouteAuthenticationFromKeyed rebuilds a binding from keyed data. The
// scheme field accepts an already-built *AuthenticationScheme or a keyed
// fragment; middleware defaults to an empty chain and required to true.
func RouteAuthenticationFromKeyed(data Keyed) *RouteAuthentication {
	ra := &RouteAuthentication{
		Middleware: stringSliceField(data, "middleware"),
		Required:   boolField(data, "required", true),
	}

	if scheme, ok := CoerceAuthenticationScheme(data["scheme"]); ok {
		ra.Scheme = scheme
	}

	return ra
}

// coerceRouteAuthentication resolves the dual input shape for route
// binding entries.
func coerceRouteAuthentication(v any) (*RouteAuthentication, bool) {
	switch rv := v.(type) {
	case *RouteAuthentication:
		return rv, true
	case RouteAuthentication:
		return &rv, true
	}

	if data, ok := asKeyed(v); ok {
		return RouteAuthenticationFromKeyed(data), true
	}

	return nil, false
}

// AuthenticationResult aggregates the security schemes discovered for a
// document and the per-route bindings that reference them. The schemes
// map owns the canonical scheme instances; route bindings point at them
// by reference.
type AuthenticationResult struct {
	schemes map[string]*AuthenticationScheme
	routes  map[int]*RouteAuthentication
}

// NewAuthenticationResult creates a result with both mappings empty.
func NewAuthenticationResult() *AuthenticationResult {
	return &AuthenticationResult{
		schemes: make(map[string]*AuthenticationScheme),
		routes:  make(map[int]*RouteAuthentication),
	}
}

// IsEmpty reports whether the result holds no schemes and no route
// bindings.
func (r *AuthenticationResult) IsEmpty() bool {
	return len(r.schemes) == 0 && len(r.routes) == 0
}

// AddScheme registers a scheme under its name. A later scheme with the
// same name overwrites the earlier one.
func (r *AuthenticationResult) AddScheme(s *AuthenticationScheme) {
	if s == nil {
		return
	}
	r.schemes[s.Name] = s
}

// HasSchemes reports whether any scheme is registered.
func (r *AuthenticationResult) HasSchemes() bool {
	return len(r.schemes) > 0
}

// SchemeCount returns the number of registered schemes.
func (r *AuthenticationResult) SchemeCount() int {
	return len(r.schemes)
}

// SchemeNames returns the registered scheme names, sorted for
// deterministic output.
func (r *AuthenticationResult) SchemeNames() []string {
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Scheme returns the scheme registered under name. Unknown names report
// false rather than failing.
func (r *AuthenticationResult) Scheme(name string) (*AuthenticationScheme, bool) {
	s, ok := r.schemes[name]

	return s, ok
}

// BindRoute associates a route index with a binding. A later binding for
// the same index overwrites the earlier one; negative indices and nil
// bindings are ignored.
func (r *AuthenticationResult) BindRoute(index int, ra *RouteAuthentication) {
	if index < 0 || ra == nil {
		return
	}
	r.routes[index] = ra
}

// RouteAuthentication returns the binding for a route index. Unknown
// indices report false rather than failing.
func (r *AuthenticationResult) RouteAuthentication(index int) (*RouteAuthentication, bool) {
	ra, ok := r.routes[index]

	return ra, ok
}

// HasRouteAuthentication reports whether the route index has a binding.
func (r *AuthenticationResult) HasRouteAuthentication(index int) bool {
	_, ok := r.routes[index]

	return ok
}

// AuthenticatedRouteCount returns the number of bound routes. Every
// entry denotes an authenticated route by construction.
func (r *AuthenticationResult) AuthenticatedRouteCount() int {
	return len(r.routes)
}

// ToKeyed converts the result to the keyed form. Route indices become
// decimal string keys so the form survives generic JSON and YAML
// encoding.
func (r *AuthenticationResult) ToKeyed() Keyed {
	schemes := make(Keyed, len(r.schemes))
	for name, s := range r.schemes {
		schemes[name] = s.ToKeyed()
	}

	routes := make(Keyed, len(r.routes))
	for index, ra := range r.routes {
		routes[strconv.Itoa(index)] = ra.ToKeyed()
	}

	return Keyed{"schemes": schemes, "routes": routes}
}

// AuthenticationResultFromKeyed rebuilds a result from keyed data. A
// missing schemes or routes key defaults to an empty mapping. Every
// scheme and route entry accepts the already-built or keyed-fragment
// shape. Route keys must be non-negative integers, either native ints or
// decimal strings; any other key is skipped. Rebuilt bindings are
// re-pointed at the canonical scheme instance when the names match, so
// reference sharing survives a round trip.
func AuthenticationResultFromKeyed(data Keyed) *AuthenticationResult {
	result := NewAuthenticationResult()

	if schemes, ok := asKeyed(data["schemes"]); ok {
		for name, raw := range schemes {
			scheme, ok := CoerceAuthenticationScheme(raw)
			if !ok {
				continue
			}
			if scheme.Name == "" {
				// Fall back to the mapping key without mutating a
				// possibly shared instance.
				named := *scheme
				named.Name = name
				scheme = &named
			}
			result.AddScheme(scheme)
		}
	}

	for index, raw := range routeEntries(data["routes"]) {
		ra, ok := coerceRouteAuthentication(raw)
		if !ok {
			continue
		}
		if canonical, ok := result.Scheme(ra.SchemeName()); ok {
			ra.Scheme = canonical
		}
		result.BindRoute(index, ra)
	}

	return result
}

// routeEntries normalizes the routes mapping to integer keys. Generic
// decoders deliver string keys; analyzer output may use native ints.
func routeEntries(v any) map[int]any {
	out := make(map[int]any)

	switch routes := v.(type) {
	case map[int]any:
		for index, raw := range routes {
			if index >= 0 {
				out[index] = raw
			}
		}

	default:
		data, ok := asKeyed(v)
		if !ok {
			return out
		}
		for key, raw := range data {
			index, err := strconv.Atoi(key)
			if err != nil || index < 0 {
				continue
			}
			out[index] = raw
		}
	}

	return out
}
