// Package comps holds the in-memory model of comps.xml group metadata: group
// records, the ordered collection they live in, and the XML codec.
package comps

// PackageReq is a single package reference inside a group's package list.
// Package lists are preserved across load/merge/encode but are not editable.
type PackageReq struct {
	Name         string `xml:",chardata"`
	Type         string `xml:"type,attr,omitempty"`
	Requires     string `xml:"requires,attr,omitempty"`
	BaseArchOnly string `xml:"basearchonly,attr,omitempty"`
}

// Group is one package-group metadata record.
//
// Pointer fields distinguish "absent in the source document" from an explicit
// value: a nil UserVisible means the group is shown to users (the format's
// default), a nil DisplayOrder means no sort override.
type Group struct {
	ID           string
	Name         string
	Description  string
	Default      *bool
	UserVisible  *bool
	DisplayOrder *int
	LangOnly     string
	NameByLang   map[string]string
	DescByLang   map[string]string
	Packages     []PackageReq
}

// Visible reports the effective user visibility (absent means visible).
func (g *Group) Visible() bool {
	return g.UserVisible == nil || *g.UserVisible
}

// Translation is one (language, text) pair of a translated attribute.
type Translation struct {
	Lang string
	Text string
}

// Edit is a sparse set of attribute changes for a single group. Zero-valued
// fields are "not requested" and leave the group untouched; translation lists,
// when present, replace the whole map (later pairs for the same language win).
type Edit struct {
	Name         string
	Description  string
	DisplayOrder *int
	UserVisible  *bool
	NameByLang   []Translation
	DescByLang   []Translation
}

// Apply overwrites each group attribute for which the edit carries a value.
func (g *Group) Apply(e Edit) {
	if e.Name != "" {
		g.Name = e.Name
	}
	if e.Description != "" {
		g.Description = e.Description
	}
	if e.DisplayOrder != nil {
		order := *e.DisplayOrder
		g.DisplayOrder = &order
	}
	if e.UserVisible != nil {
		visible := *e.UserVisible
		g.UserVisible = &visible
	}
	if len(e.NameByLang) > 0 {
		g.NameByLang = translationMap(e.NameByLang)
	}
	if len(e.DescByLang) > 0 {
		g.DescByLang = translationMap(e.DescByLang)
	}
}

// translationMap builds a language→text map from ordered pairs; a later pair
// for the same language overwrites an earlier one.
func translationMap(pairs []Translation) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p.Lang] = p.Text
	}
	return m
}
