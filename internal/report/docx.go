package report

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 12
	textColor = "000000"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// markdownToDocx writes a styled document for the subset of markdown the
// agents produce: headings, bullets, numbered lists and bold spans.
func markdownToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		p := doc.AddParagraph("")
		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			addStyledRun(p, m[2], true, headingSize(len(m[1])))
		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			addRichText(p, "• "+m[1])
		case reNumbered.MatchString(trimmed):
			addRichText(p, trimmed)
		default:
			addRichText(p, trimmed)
		}
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 13
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanInline(text)).Font(fontName).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}

// addRichText keeps **bold** spans bold and writes the rest as plain runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanInline(part)).Font(fontName).Size(fontSize).Color(textColor)
		}
		if i < len(matches) {
			p.AddText(cleanInline(matches[i][1])).Font(fontName).Size(fontSize).Color(textColor).Bold(true)
		}
	}
}

func cleanInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
