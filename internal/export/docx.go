// Package export writes the caption timeline out as a plain transcript
// document for people who want the text without the video.
package export

import (
	"strings"

	"github.com/gomutex/godocx"

	"github.com/nguyentantai21042004/vibesync/internal/timeline"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// WriteTranscript renders the timeline as a .docx transcript at
// outputPath: a bold title followed by one paragraph per caption, with
// empty and consecutive duplicate captions dropped.
func WriteTranscript(title string, segments []timeline.Segment, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(titleSize).Color("000000").Bold(true)
	doc.AddParagraph("")

	prev := ""
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" || text == prev {
			continue
		}
		prev = text
		doc.AddParagraph("").AddText(text).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
