package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationScheme(t *testing.T) {
	t.Run("constructor defaults to http", func(t *testing.T) {
		s := NewAuthenticationScheme("bearerAuth", "bearer")
		assert.Equal(t, AuthTypeHTTP, s.Type)
		assert.Equal(t, "bearerAuth", s.Name)
		assert.Equal(t, "bearer", s.Scheme)
	})

	t.Run("to keyed omits unset optionals", func(t *testing.T) {
		data := NewAuthenticationScheme("basicAuth", "basic").ToKeyed()
		assert.Equal(t, Keyed{"type": "http", "name": "basicAuth", "scheme": "basic"}, data)
	})

	t.Run("from keyed reads optionals", func(t *testing.T) {
		s := AuthenticationSchemeFromKeyed(Keyed{
			"type":         "http",
			"name":         "bearerAuth",
			"scheme":       "bearer",
			"bearerFormat": "JWT",
			"description":  "Token auth",
		})

		assert.Equal(t, "JWT", s.BearerFormat)
		assert.Equal(t, "Token auth", s.Description)
	})

	t.Run("unknown type degrades to http", func(t *testing.T) {
		s := AuthenticationSchemeFromKeyed(Keyed{"type": "oauth2", "name": "x"})
		assert.Equal(t, AuthTypeHTTP, s.Type)
	})

	t.Run("round trip", func(t *testing.T) {
		s := NewAuthenticationScheme("bearerAuth", "bearer")
		s.BearerFormat = "JWT"
		s.Description = "Token auth"
		assert.Equal(t, s, AuthenticationSchemeFromKeyed(s.ToKeyed()))
	})
}

func TestRouteAuthentication(t *testing.T) {
	t.Run("constructor defaults required", func(t *testing.T) {
		ra := NewRouteAuthentication(NewAuthenticationScheme("bearerAuth", "bearer"), "auth")
		assert.True(t, ra.IsRequired())
	})

	t.Run("scheme name proxies to held scheme", func(t *testing.T) {
		ra := NewRouteAuthentication(NewAuthenticationScheme("bearerAuth", "bearer"))
		assert.Equal(t, "bearerAuth", ra.SchemeName())

		unbound := &RouteAuthentication{}
		assert.Empty(t, unbound.SchemeName())
	})

	t.Run("middleware membership is exact", func(t *testing.T) {
		ra := NewRouteAuthentication(nil, "auth:sanctum", "throttle:60,1")
		assert.True(t, ra.HasMiddleware("auth:sanctum"))
		assert.False(t, ra.HasMiddleware("auth"))
		assert.False(t, ra.HasMiddleware("Auth:sanctum"))
	})

	t.Run("from keyed defaults", func(t *testing.T) {
		ra := RouteAuthenticationFromKeyed(Keyed{
			"scheme":     Keyed{"name": "bearerAuth", "scheme": "bearer"},
			"middleware": []string{"auth"},
		})

		assert.True(t, ra.Required)
		assert.Equal(t, []string{"auth"}, ra.Middleware)
		require.NotNil(t, ra.Scheme)
		assert.Equal(t, "bearerAuth", ra.Scheme.Name)
	})

	t.Run("from keyed accepts pre-built scheme", func(t *testing.T) {
		scheme := NewAuthenticationScheme("basicAuth", "basic")
		ra := RouteAuthenticationFromKeyed(Keyed{"scheme": scheme})
		assert.Same(t, scheme, ra.Scheme)
	})

	t.Run("missing middleware yields empty chain", func(t *testing.T) {
		ra := RouteAuthenticationFromKeyed(Keyed{})
		assert.Empty(t, ra.Middleware)
		assert.Nil(t, ra.Scheme)
	})

	t.Run("round trip", func(t *testing.T) {
		ra := NewRouteAuthentication(NewAuthenticationScheme("bearerAuth", "bearer"), "auth", "verified")
		ra.Required = false
		assert.Equal(t, ra, RouteAuthenticationFromKeyed(ra.ToKeyed()))
	})
}

func TestAuthenticationResult(t *testing.T) {
	t.Run("new result is empty", func(t *testing.T) {
		r := NewAuthenticationResult()
		assert.True(t, r.IsEmpty())
		assert.False(t, r.HasSchemes())
		assert.Zero(t, r.SchemeCount())
		assert.Zero(t, r.AuthenticatedRouteCount())
	})

	t.Run("scheme lookups never fail", func(t *testing.T) {
		r := NewAuthenticationResult()
		_, ok := r.Scheme("nonexistent")
		assert.False(t, ok)
		_, ok = r.RouteAuthentication(99)
		assert.False(t, ok)
		assert.False(t, r.HasRouteAuthentication(99))
	})

	t.Run("add and lookup", func(t *testing.T) {
		r := NewAuthenticationResult()
		scheme := NewAuthenticationScheme("bearerAuth", "bearer")
		r.AddScheme(scheme)
		r.BindRoute(3, NewRouteAuthentication(scheme, "auth"))

		assert.False(t, r.IsEmpty())
		assert.Equal(t, 1, r.SchemeCount())
		assert.Equal(t, []string{"bearerAuth"}, r.SchemeNames())

		got, ok := r.Scheme("bearerAuth")
		require.True(t, ok)
		assert.Same(t, scheme, got)

		assert.True(t, r.HasRouteAuthentication(3))
		assert.Equal(t, 1, r.AuthenticatedRouteCount())
	})

	t.Run("later entries overwrite earlier ones", func(t *testing.T) {
		r := NewAuthenticationResult()
		r.AddScheme(NewAuthenticationScheme("auth", "basic"))
		r.AddScheme(NewAuthenticationScheme("auth", "bearer"))

		assert.Equal(t, 1, r.SchemeCount())
		got, _ := r.Scheme("auth")
		assert.Equal(t, "bearer", got.Scheme)
	})

	t.Run("route indices need not be contiguous", func(t *testing.T) {
		r := NewAuthenticationResult()
		scheme := NewAuthenticationScheme("bearerAuth", "bearer")
		r.BindRoute(0, NewRouteAuthentication(scheme))
		r.BindRoute(7, NewRouteAuthentication(scheme))

		assert.Equal(t, 2, r.AuthenticatedRouteCount())
		assert.True(t, r.HasRouteAuthentication(7))
		assert.False(t, r.HasRouteAuthentication(3))
	})

	t.Run("shared scheme reference across routes", func(t *testing.T) {
		r := NewAuthenticationResult()
		scheme := NewAuthenticationScheme("bearerAuth", "bearer")
		r.AddScheme(scheme)
		r.BindRoute(0, NewRouteAuthentication(scheme))
		r.BindRoute(1, NewRouteAuthentication(scheme))

		first, _ := r.RouteAuthentication(0)
		second, _ := r.RouteAuthentication(1)
		assert.Same(t, first.Scheme, second.Scheme)
	})
}

func TestAuthenticationResultFromKeyed(t *testing.T) {
	t.Run("missing mappings default to empty", func(t *testing.T) {
		r := AuthenticationResultFromKeyed(Keyed{})
		assert.True(t, r.IsEmpty())
	})

	t.Run("string route keys", func(t *testing.T) {
		r := AuthenticationResultFromKeyed(Keyed{
			"routes": Keyed{
				"0": Keyed{"scheme": Keyed{"name": "a", "scheme": "bearer"}},
				"5": Keyed{"scheme": Keyed{"name": "a", "scheme": "bearer"}},
			},
		})

		assert.Equal(t, 2, r.AuthenticatedRouteCount())
		assert.True(t, r.HasRouteAuthentication(5))
	})

	t.Run("native int route keys", func(t *testing.T) {
		r := AuthenticationResultFromKeyed(Keyed{
			"routes": map[int]any{
				2: Keyed{"middleware": []string{"auth"}},
			},
		})

		require.True(t, r.HasRouteAuthentication(2))
		ra, _ := r.RouteAuthentication(2)
		assert.True(t, ra.HasMiddleware("auth"))
	})

	t.Run("non-integer and negative route keys skipped", func(t *testing.T) {
		r := AuthenticationResultFromKeyed(Keyed{
			"routes": Keyed{
				"first": Keyed{},
				"-1":    Keyed{},
				"1":     Keyed{},
			},
		})

		assert.Equal(t, 1, r.AuthenticatedRouteCount())
		assert.True(t, r.HasRouteAuthentication(1))
	})

	t.Run("scheme entries accept both shapes", func(t *testing.T) {
		prebuilt := NewAuthenticationScheme("basicAuth", "basic")
		r := AuthenticationResultFromKeyed(Keyed{
			"schemes": Keyed{
				"basicAuth":  prebuilt,
				"bearerAuth": Keyed{"name": "bearerAuth", "scheme": "bearer"},
			},
		})

		assert.Equal(t, 2, r.SchemeCount())
		got, ok := r.Scheme("basicAuth")
		require.True(t, ok)
		assert.Same(t, prebuilt, got)
	})

	t.Run("nameless scheme fragment adopts its mapping key", func(t *testing.T) {
		r := AuthenticationResultFromKeyed(Keyed{
			"schemes": Keyed{"bearerAuth": Keyed{"scheme": "bearer"}},
		})

		got, ok := r.Scheme("bearerAuth")
		require.True(t, ok)
		assert.Equal(t, "bearerAuth", got.Name)
	})

	t.Run("route bindings re-point at canonical schemes", func(t *testing.T) {
		r := AuthenticationResultFromKeyed(Keyed{
			"schemes": Keyed{
				"bearerAuth": Keyed{"name": "bearerAuth", "scheme": "bearer"},
			},
			"routes": Keyed{
				"0": Keyed{"scheme": Keyed{"name": "bearerAuth", "scheme": "bearer"}},
			},
		})

		canonical, _ := r.Scheme("bearerAuth")
		ra, _ := r.RouteAuthentication(0)
		assert.Same(t, canonical, ra.Scheme)
	})
}

func TestAuthenticationResultEndToEnd(t *testing.T) {
	scheme := NewAuthenticationScheme("sanctumAuth", "bearer")
	scheme.BearerFormat = "JWT"

	result := NewAuthenticationResult()
	result.AddScheme(scheme)
	result.BindRoute(0, NewRouteAuthentication(scheme, "auth:sanctum"))

	rebuilt := AuthenticationResultFromKeyed(result.ToKeyed())

	assert.Equal(t, 1, rebuilt.SchemeCount())
	assert.Equal(t, 1, rebuilt.AuthenticatedRouteCount())

	got, ok := rebuilt.Scheme("sanctumAuth")
	require.True(t, ok)
	assert.Equal(t, "sanctumAuth", got.Name)
	assert.Equal(t, "JWT", got.BearerFormat)

	ra, ok := rebuilt.RouteAuthentication(0)
	require.True(t, ok)
	assert.True(t, ra.IsRequired())
	assert.True(t, ra.HasMiddleware("auth:sanctum"))
	assert.Same(t, got, ra.Scheme)

	assert.Equal(t, result, rebuilt)
}
