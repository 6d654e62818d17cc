package comps

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
)

// doctype matches the declaration emitted by the reference comps tooling.
const doctype = `<!DOCTYPE comps PUBLIC "-//Red Hat, Inc.//DTD Comps info//EN" "comps.dtd">`

// EncodeOptions controls how a collection is rendered to comps XML.
type EncodeOptions struct {
	// DefaultExplicit always emits a <default> marker, even for the
	// format's default value (false).
	DefaultExplicit bool
	// UserVisibleExplicit always emits a <uservisible> marker, even for the
	// format's default value (true).
	UserVisibleExplicit bool
	// EmptyGroups permits encoding a collection with zero groups.
	EmptyGroups bool
	// Indent is the per-level indentation string; two spaces when empty.
	Indent string
}

// DefaultEncodeOptions mirrors the reference tooling: explicit markers on,
// empty output permitted.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		DefaultExplicit:     true,
		UserVisibleExplicit: true,
		EmptyGroups:         true,
		Indent:              "  ",
	}
}

// ParseError reports a failed document decode together with the parser
// diagnostics. Diagnostics may repeat; consumers deduplicate before display.
type ParseError struct {
	Diagnostics []string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse comps document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EncodeError reports a fatal document encode failure.
type EncodeError struct {
	Msg string
}

func (e *EncodeError) Error() string {
	return "encode comps document: " + e.Msg
}

// langString is a display string with an optional xml:lang attribute.
// encoding/xml cannot express the predeclared xml: prefix through struct tags,
// so both directions are implemented by hand.
type langString struct {
	Lang string
	Text string
}

func (s langString) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if s.Lang != "" {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "xml:lang"},
			Value: s.Lang,
		})
	}
	return e.EncodeElement(s.Text, start)
}

func (s *langString) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Local == "lang" {
			s.Lang = a.Value
		}
	}
	return d.DecodeElement(&s.Text, &start)
}

type xmlPackageList struct {
	Packages []PackageReq `xml:"packagereq"`
}

type xmlGroup struct {
	ID           string         `xml:"id"`
	Names        []langString   `xml:"name"`
	Descriptions []langString   `xml:"description"`
	Default      *bool          `xml:"default,omitempty"`
	UserVisible  *bool          `xml:"uservisible,omitempty"`
	DisplayOrder *int           `xml:"display_order,omitempty"`
	LangOnly     string         `xml:"langonly,omitempty"`
	PackageList  xmlPackageList `xml:"packagelist"`
}

type xmlComps struct {
	XMLName xml.Name     `xml:"comps"`
	Groups  []xmlGroup   `xml:"group"`
	Others  []rawElement `xml:",any"`
}

// Parse decodes a comps XML document into a collection. Decode failures are
// reported as *ParseError carrying line-tagged diagnostics.
func Parse(data []byte) (*Collection, error) {
	var doc xmlComps
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Diagnostics: diagnostics(err), Err: err}
	}

	c := New()
	for _, xg := range doc.Groups {
		c.Append(groupFromXML(xg))
	}
	c.others = doc.Others
	return c, nil
}

// Encode renders the collection as an indented comps XML document with the
// standard declaration and doctype. Non-fatal per-group findings are returned
// as diagnostic strings alongside the bytes.
func Encode(c *Collection, opts EncodeOptions) ([]byte, []string, error) {
	if c.Len() == 0 && !opts.EmptyGroups {
		return nil, nil, &EncodeError{Msg: "collection contains no groups"}
	}

	var diags []string
	doc := xmlComps{Others: c.others}
	for i, g := range c.groups {
		if g.ID == "" {
			diags = append(diags, fmt.Sprintf("group #%d has an empty id", i+1))
		}
		if g.Name == "" {
			diags = append(diags, fmt.Sprintf("group %q has an empty name", g.ID))
		}
		doc.Groups = append(doc.Groups, groupToXML(g, opts))
	}

	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	body, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, diags, &EncodeError{Msg: err.Error()}
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(doctype)
	b.WriteByte('\n')
	b.Write(body)
	b.WriteByte('\n')
	return []byte(b.String()), diags, nil
}

func groupFromXML(xg xmlGroup) *Group {
	g := &Group{
		ID:           xg.ID,
		Default:      xg.Default,
		UserVisible:  xg.UserVisible,
		DisplayOrder: xg.DisplayOrder,
		LangOnly:     xg.LangOnly,
		Packages:     xg.PackageList.Packages,
	}
	for _, n := range xg.Names {
		if n.Lang == "" {
			g.Name = n.Text
			continue
		}
		if g.NameByLang == nil {
			g.NameByLang = make(map[string]string)
		}
		g.NameByLang[n.Lang] = n.Text
	}
	for _, d := range xg.Descriptions {
		if d.Lang == "" {
			g.Description = d.Text
			continue
		}
		if g.DescByLang == nil {
			g.DescByLang = make(map[string]string)
		}
		g.DescByLang[d.Lang] = d.Text
	}
	return g
}

func groupToXML(g *Group, opts EncodeOptions) xmlGroup {
	xg := xmlGroup{
		ID:           g.ID,
		DisplayOrder: g.DisplayOrder,
		LangOnly:     g.LangOnly,
		PackageList:  xmlPackageList{Packages: g.Packages},
	}

	xg.Names = append(xg.Names, langString{Text: g.Name})
	xg.Names = append(xg.Names, localized(g.NameByLang)...)
	xg.Descriptions = append(xg.Descriptions, langString{Text: g.Description})
	xg.Descriptions = append(xg.Descriptions, localized(g.DescByLang)...)

	// Absent booleans carry the format defaults: default=false, uservisible=true.
	xg.Default = explicitBool(g.Default, false, opts.DefaultExplicit)
	xg.UserVisible = explicitBool(g.UserVisible, true, opts.UserVisibleExplicit)
	return xg
}

// explicitBool decides whether a boolean marker is emitted: explicit mode
// always emits the effective value, otherwise only non-default values appear.
func explicitBool(v *bool, def bool, explicit bool) *bool {
	if v == nil {
		if explicit {
			return &def
		}
		return nil
	}
	if !explicit && *v == def {
		return nil
	}
	out := *v
	return &out
}

// localized renders a translation map as lang-tagged strings, sorted by
// language tag for deterministic output.
func localized(m map[string]string) []langString {
	if len(m) == 0 {
		return nil
	}
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	out := make([]langString, 0, len(langs))
	for _, lang := range langs {
		out = append(out, langString{Lang: lang, Text: m[lang]})
	}
	return out
}

func diagnostics(err error) []string {
	if serr, ok := err.(*xml.SyntaxError); ok {
		return []string{fmt.Sprintf("line %d: %s", serr.Line, serr.Msg)}
	}
	return []string{err.Error()}
}
