package ir

// TagGroup is a named cluster of tag labels used to organize generated
// documentation, emitted as an x-tagGroups vendor extension.
type TagGroup struct {
	Name string
	Tags []string
}

// NewTagGroup creates a tag group with the given labels.
func NewTagGroup(name string, tags ...string) TagGroup {
	var labels []string
	if len(tags) > 0 {
		labels = append(labels, tags...)
	}

	return TagGroup{Name: name, Tags: labels}
}

// HasTags reports whether the group holds any labels.
func (g TagGroup) HasTags() bool {
	return len(g.Tags) > 0
}

// TagCount returns the number of labels in the group.
func (g TagGroup) TagCount() int {
	return len(g.Tags)
}

// ContainsTag reports whether the exact label appears in the group.
// The check is case-sensitive.
func (g TagGroup) ContainsTag(label string) bool {
	for _, tag := range g.Tags {
		if tag == label {
			return true
		}
	}

	return false
}

// ToKeyed converts the group to the keyed form.
func (g TagGroup) ToKeyed() Keyed {
	var tags []string
	if len(g.Tags) > 0 {
		tags = make([]string, len(g.Tags))
		copy(tags, g.Tags)
	}

	return Keyed{"name": g.Name, "tags": tags}
}

// TagGroupFromKeyed rebuilds a group from keyed data. Labels that are
// not strings are skipped.
func TagGroupFromKeyed(data Keyed) TagGroup {
	return TagGroup{
		Name: stringField(data, "name", ""),
		Tags: stringSliceField(data, "tags"),
	}
}
