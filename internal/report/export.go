package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
)

var reUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Export writes the run as <name>.md and <name>.docx under dir.
func Export(dir, name, transcript string, results []pipeline.Result) (string, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}

	base := fileBase(name)
	md := Markdown(name, transcript, results)

	mdPath := filepath.Join(dir, base+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", "", fmt.Errorf("write markdown report: %w", err)
	}

	docxPath := filepath.Join(dir, base+".docx")
	if err := markdownToDocx("Meeting report: "+name, md, docxPath); err != nil {
		return mdPath, "", fmt.Errorf("write docx report: %w", err)
	}

	return mdPath, docxPath, nil
}

// Markdown renders the step outputs in order, followed by the full transcript.
func Markdown(name, transcript string, results []pipeline.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)

	for _, r := range results {
		fmt.Fprintf(&sb, "## Step %d: %s\n\n", r.Index+1, r.Kind.Label())
		sb.WriteString(strings.TrimSpace(r.Output))
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Transcript\n\n")
	sb.WriteString(strings.TrimSpace(transcript))
	sb.WriteString("\n")
	return sb.String()
}

func fileBase(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	name = strings.Trim(reUnsafe.ReplaceAllString(name, "_"), "_.")
	if name == "" {
		return "meeting"
	}
	return name
}
