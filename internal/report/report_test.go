package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
)

func TestPreview(t *testing.T) {
	long := strings.Repeat("a", 1500)
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "short", text: "hello", want: "hello"},
		{name: "exact", text: strings.Repeat("b", 1000), want: strings.Repeat("b", 1000)},
		{name: "long", text: long, want: long[:1000] + "..."},
		{name: "multibyte", text: strings.Repeat("é", 1001), want: strings.Repeat("é", 1000) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.text, PreviewLimit); got != tt.want {
				t.Errorf("Preview() len = %d, want %d", len(got), len(tt.want))
			}
		})
	}
}

func TestTerminalPresenter(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminal(&buf)

	p.Transcript("Team discussed Q3 roadmap.")
	p.Step(pipeline.Result{Index: 0, Kind: pipeline.Summarize, Agent: "Summarizer", Output: "Roadmap agreed."})
	p.Step(pipeline.Result{Index: 1, Kind: pipeline.ActionItems, Output: "- **Ana**: ship it"})
	p.Failure(errors.New("smtp down"))
	p.Notice("saved %s", "report.md")

	out := buf.String()
	want := []string{
		"Transcript preview",
		"Team discussed Q3 roadmap.",
		"Step 1: Summary",
		"Roadmap agreed.",
		"Step 2: Action Items",
		"smtp down",
		"saved report.md",
	}
	last := -1
	for _, w := range want {
		idx := strings.Index(out, w)
		if idx < 0 {
			t.Errorf("output missing %q:\n%s", w, out)
			continue
		}
		if idx < last {
			t.Errorf("%q printed out of order", w)
		}
		last = idx
	}
}

func TestMarkdown(t *testing.T) {
	results := []pipeline.Result{
		{Index: 0, Kind: pipeline.Summarize, Output: "  Roadmap agreed.  "},
		{Index: 1, Kind: pipeline.DraftEmail, Output: "Subject: Follow-up"},
	}
	got := Markdown("standup", "full transcript", results)

	want := "# standup\n\n" +
		"## Step 1: Summary\n\nRoadmap agreed.\n\n" +
		"## Step 2: Follow-up Email Draft\n\nSubject: Follow-up\n\n" +
		"## Transcript\n\nfull transcript\n"
	if got != want {
		t.Errorf("Markdown() =\n%q\nwant\n%q", got, want)
	}
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Weekly Sync.mp3", "Weekly_Sync"},
		{"/tmp/audio/standup.wav", "standup"},
		{"???", "meeting"},
		{"", "meeting"},
		{"..mp3", "meeting"},
		{".", "meeting"},
		{".hidden.wav", "hidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileBase(tt.name); got != tt.want {
				t.Errorf("fileBase(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	results := []pipeline.Result{
		{Index: 0, Kind: pipeline.Summarize, Output: "# Overview\n- **Ana** owns the launch\n1. first"},
	}

	mdPath, docxPath, err := Export(dir, "Weekly Sync.mp3", "hello world", results)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if mdPath != filepath.Join(dir, "Weekly_Sync.md") {
		t.Errorf("mdPath = %q", mdPath)
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	if !strings.Contains(string(md), "## Step 1: Summary") {
		t.Errorf("markdown missing step heading:\n%s", md)
	}

	info, err := os.Stat(docxPath)
	if err != nil {
		t.Fatalf("stat docx: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx is empty")
	}
}

func TestExportDotNamedAudio(t *testing.T) {
	dir := t.TempDir()

	mdPath, docxPath, err := Export(dir, "..mp3", "t", nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if mdPath != filepath.Join(dir, "meeting.md") || docxPath != filepath.Join(dir, "meeting.docx") {
		t.Errorf("Export() = %q, %q, want meeting.md and meeting.docx", mdPath, docxPath)
	}
}
