package ir

// OpenApiInfo carries document-level metadata for the info object.
//
// Title, Version, and Description default to empty strings and are never
// absent; TermsOfService, Contact, and License default to explicitly
// absent. Serialization omits absent fields entirely rather than
// emitting null or empty placeholders.
//
// See: https://spec.openapis.org/oas/v3.1.0#info-object
type OpenApiInfo struct {
	Title          string
	Version        string
	Description    string
	TermsOfService *string
	Contact        Keyed
	License        Keyed
}

// NewOpenApiInfo creates document metadata with the given title and
// version and every optional field absent.
func NewOpenApiInfo(title, version string) OpenApiInfo {
	return OpenApiInfo{Title: title, Version: version}
}

// HasTermsOfService reports whether a terms-of-service URL was set.
func (i OpenApiInfo) HasTermsOfService() bool {
	return i.TermsOfService != nil
}

// HasContact reports whether a contact map was set.
func (i OpenApiInfo) HasContact() bool {
	return i.Contact != nil
}

// HasLicense reports whether a license map was set.
func (i OpenApiInfo) HasLicense() bool {
	return i.License != nil
}

// ToKeyed converts the metadata to the keyed form. Title and version are
// always emitted; description only when non-empty; the optional fields
// only when present.
func (i OpenApiInfo) ToKeyed() Keyed {
	data := Keyed{
		"title":   i.Title,
		"version": i.Version,
	}

	if i.Description != "" {
		data["description"] = i.Description
	}
	if i.TermsOfService != nil {
		data["termsOfService"] = *i.TermsOfService
	}
	if i.Contact != nil {
		data["contact"] = i.Contact
	}
	if i.License != nil {
		data["license"] = i.License
	}

	return data
}

// OpenApiInfoFromKeyed rebuilds document metadata from keyed data.
// Missing title, version, and description resolve to empty strings;
// contact and license are read only when the value is itself a keyed
// container, any other shape leaving the field absent.
func OpenApiInfoFromKeyed(data Keyed) OpenApiInfo {
	info := OpenApiInfo{
		Title:       stringField(data, "title", ""),
		Version:     stringField(data, "version", ""),
		Description: stringField(data, "description", ""),
	}

	if s, ok := data["termsOfService"].(string); ok {
		info.TermsOfService = &s
	}
	if contact, ok := asKeyed(data["contact"]); ok {
		info.Contact = contact
	}
	if license, ok := asKeyed(data["license"]); ok {
		info.License = license
	}

	return info
}
