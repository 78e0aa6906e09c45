package utils

import (
	"io"

	"baliance.com/gooxml/document"
)

// ReportSection is a heading plus its body lines in a generated report document.
type ReportSection struct {
	Heading string
	Lines   []string
}

// WriteReportDoc writes a Word document with a title and sections to w.
func WriteReportDoc(w io.Writer, title string, sections []ReportSection) error {
	doc := document.New()

	doc.AddParagraph().AddRun().AddText(title)
	for _, section := range sections {
		doc.AddParagraph().AddRun().AddText(section.Heading)
		for _, line := range section.Lines {
			doc.AddParagraph().AddRun().AddText(line)
		}
	}

	return doc.Save(w)
}
