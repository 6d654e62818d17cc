// Package testutil provides shared test helpers for building comps documents
// on disk.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// GroupXML renders a minimal group element with the given id and name plus
// any extra child elements.
func GroupXML(id, name string, extra ...string) string {
	body := fmt.Sprintf("<id>%s</id><name>%s</name>", id, name)
	for _, e := range extra {
		body += e
	}
	return "<group>" + body + "<packagelist/></group>"
}

// CompsDoc wraps group elements in a comps document envelope.
func CompsDoc(groups ...string) string {
	doc := `<?xml version="1.0" encoding="UTF-8"?>` + "\n<comps>"
	for _, g := range groups {
		doc += g
	}
	return doc + "</comps>\n"
}

// WriteComps writes a comps document into dir and returns its path.
func WriteComps(t *testing.T, dir, name string, groups ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(CompsDoc(groups...)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
