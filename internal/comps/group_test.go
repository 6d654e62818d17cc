package comps

import "testing"

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestApplyOverwritesPresentFields(t *testing.T) {
	g := &Group{ID: "core", Name: "Core", Description: "Old"}
	g.Apply(Edit{Description: "New desc"})

	if g.Name != "Core" {
		t.Errorf("Name = %q, want untouched", g.Name)
	}
	if g.Description != "New desc" {
		t.Errorf("Description = %q", g.Description)
	}
}

func TestApplyVisibilityOnly(t *testing.T) {
	g := &Group{
		ID:          "core",
		Name:        "Core",
		Description: "Desc",
		NameByLang:  map[string]string{"cs": "Jádro"},
	}
	g.Apply(Edit{UserVisible: boolPtr(false)})

	if g.Visible() {
		t.Error("group should be invisible")
	}
	if g.Name != "Core" || g.Description != "Desc" {
		t.Errorf("unrelated fields changed: %+v", g)
	}
	if g.NameByLang["cs"] != "Jádro" {
		t.Errorf("translations changed: %v", g.NameByLang)
	}
}

func TestApplyTranslationsReplaceWholesale(t *testing.T) {
	g := &Group{
		ID:         "core",
		NameByLang: map[string]string{"cs": "Jádro", "de": "Kern"},
	}
	g.Apply(Edit{NameByLang: []Translation{{Lang: "fr", Text: "Noyau"}}})

	if len(g.NameByLang) != 1 || g.NameByLang["fr"] != "Noyau" {
		t.Errorf("NameByLang = %v, want full replacement", g.NameByLang)
	}
}

func TestApplyLaterTranslationWins(t *testing.T) {
	g := &Group{ID: "core"}
	g.Apply(Edit{DescByLang: []Translation{
		{Lang: "en", Text: "first"},
		{Lang: "en", Text: "second"},
	}})

	if g.DescByLang["en"] != "second" {
		t.Errorf("DescByLang[en] = %q, want later pair to win", g.DescByLang["en"])
	}
}

func TestApplyExplicitZeroDisplayOrder(t *testing.T) {
	g := &Group{ID: "core", DisplayOrder: intPtr(5)}
	g.Apply(Edit{DisplayOrder: intPtr(0)})

	if g.DisplayOrder == nil || *g.DisplayOrder != 0 {
		t.Errorf("DisplayOrder = %v, want explicit 0", g.DisplayOrder)
	}
}

func TestApplyEmptyEditIsNoop(t *testing.T) {
	g := &Group{
		ID:           "core",
		Name:         "Core",
		DisplayOrder: intPtr(3),
		UserVisible:  boolPtr(false),
	}
	g.Apply(Edit{})

	if g.Name != "Core" || *g.DisplayOrder != 3 || g.Visible() {
		t.Errorf("empty edit changed the group: %+v", g)
	}
}

func TestVisibleDefaultsTrue(t *testing.T) {
	g := &Group{ID: "core"}
	if !g.Visible() {
		t.Error("absent uservisible should mean visible")
	}
}
