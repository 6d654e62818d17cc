package comps

import "encoding/xml"

// rawElement is an opaque non-group document element (category, environment,
// langpacks) carried through load, merge, and encode untouched.
type rawElement struct {
	XMLName xml.Name
	Inner   []byte `xml:",innerxml"`
}

// Collection is the ordered aggregate of group records for one run. Insertion
// order is preserved so output is deterministic; duplicate ids are tolerated
// and resolved by first-match lookup.
type Collection struct {
	groups []*Group
	others []rawElement
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{}
}

// Len returns the number of groups.
func (c *Collection) Len() int {
	return len(c.groups)
}

// Groups returns the groups in insertion order. The slice is shared; callers
// must not reorder it.
func (c *Collection) Groups() []*Group {
	return c.groups
}

// Merge appends every group (and opaque element) of other to c in order. No
// deduplication happens here: duplicate ids across sources coexist and the
// earliest-loaded one wins at lookup time.
func (c *Collection) Merge(other *Collection) {
	c.groups = append(c.groups, other.groups...)
	c.others = append(c.others, other.others...)
}

// FindByID returns the first group whose id equals id, or nil.
func (c *Collection) FindByID(id string) *Group {
	for _, g := range c.groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// FindByName returns the first group whose name equals name, or nil.
func (c *Collection) FindByName(name string) *Group {
	for _, g := range c.groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Find locates a group first by id, then by name. An id match always takes
// precedence over a name match, regardless of sequence position.
func (c *Collection) Find(id, name string) *Group {
	if id != "" {
		if g := c.FindByID(id); g != nil {
			return g
		}
	}
	if name != "" {
		if g := c.FindByName(name); g != nil {
			return g
		}
	}
	return nil
}

// Append adds a group at the end. The caller is responsible for having
// checked id uniqueness beforehand.
func (c *Collection) Append(g *Group) {
	c.groups = append(c.groups, g)
}
