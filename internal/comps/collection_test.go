package comps

import "testing"

func group(id, name string) *Group {
	return &Group{ID: id, Name: name}
}

func ids(c *Collection) []string {
	out := make([]string, 0, c.Len())
	for _, g := range c.Groups() {
		out = append(out, g.ID)
	}
	return out
}

func TestMergePreservesOrder(t *testing.T) {
	a := New()
	a.Append(group("a1", "A1"))
	a.Append(group("a2", "A2"))
	b := New()
	b.Append(group("b1", "B1"))

	a.Merge(b)

	want := []string{"a1", "a2", "b1"}
	got := ids(a)
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMergeAssociative(t *testing.T) {
	build := func() (*Collection, *Collection, *Collection) {
		a, b, c := New(), New(), New()
		a.Append(group("a", "A"))
		b.Append(group("b", "B"))
		c.Append(group("c", "C"))
		return a, b, c
	}

	// A + (B + C)
	a1, b1, c1 := build()
	b1.Merge(c1)
	a1.Merge(b1)

	// (A + B) + C
	a2, b2, c2 := build()
	a2.Merge(b2)
	a2.Merge(c2)

	left, right := ids(a1), ids(a2)
	if len(left) != len(right) {
		t.Fatalf("lengths differ: %v vs %v", left, right)
	}
	for i := range left {
		if left[i] != right[i] {
			t.Errorf("order differs at %d: %q vs %q", i, left[i], right[i])
		}
	}
}

func TestMergeKeepsDuplicateIDs(t *testing.T) {
	a := New()
	a.Append(group("dup", "First"))
	b := New()
	b.Append(group("dup", "Second"))

	a.Merge(b)

	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}
	if g := a.FindByID("dup"); g == nil || g.Name != "First" {
		t.Errorf("FindByID should return the earliest-loaded duplicate, got %+v", g)
	}
}

func TestFindPrefersID(t *testing.T) {
	c := New()
	c.Append(group("other", "Target"))
	c.Append(group("target", "Other"))

	// The name match sits earlier in the sequence than the id match; the id
	// match must still win.
	g := c.Find("target", "Target")
	if g == nil || g.ID != "target" {
		t.Fatalf("Find = %+v, want id match", g)
	}
}

func TestFindFallsBackToName(t *testing.T) {
	c := New()
	c.Append(group("core", "Core"))

	if g := c.Find("missing", "Core"); g == nil || g.ID != "core" {
		t.Errorf("Find should fall back to name, got %+v", g)
	}
	if g := c.Find("", "Core"); g == nil || g.ID != "core" {
		t.Errorf("Find by name only, got %+v", g)
	}
	if g := c.Find("", ""); g != nil {
		t.Errorf("Find with nothing requested should be nil, got %+v", g)
	}
	if g := c.Find("missing", "Missing"); g != nil {
		t.Errorf("Find with no match should be nil, got %+v", g)
	}
}
