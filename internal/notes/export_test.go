package notes

import (
	"strings"
	"testing"
)

func TestExportHTML(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		markdown string
		contains []string
	}{
		{
			name:     "heading and list",
			title:    "Work",
			markdown: "# Tasks\n\n- call dentist\n- ship release",
			contains: []string{"<title>Work</title>", "<h1>Tasks</h1>", "<li>call dentist</li>"},
		},
		{
			name:     "gfm strikethrough",
			title:    "Home",
			markdown: "~~done~~",
			contains: []string{"<del>done</del>"},
		},
		{
			name:     "empty notes still produce a document",
			title:    "Empty",
			markdown: "",
			contains: []string{"<!DOCTYPE html>", "<title>Empty</title>"},
		},
		{
			name:     "title is escaped",
			title:    "A <b> project",
			markdown: "x",
			contains: []string{"<title>A &lt;b&gt; project</title>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ExportHTML(tt.title, tt.markdown)
			if err != nil {
				t.Fatalf("export failed: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(string(out), want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}
