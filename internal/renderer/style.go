package renderer

import "fmt"

// Style is the single style directive applied to the burned captions,
// passed through to the subtitles filter's force_style parameter.
type Style struct {
	FontSize      int
	PrimaryColour string
}

// forceStyle renders the ASS override string,
// e.g. "Fontsize=24,PrimaryColour=&HFFFFFF&".
func (s Style) forceStyle() string {
	return fmt.Sprintf("Fontsize=%d,PrimaryColour=%s", s.FontSize, s.PrimaryColour)
}
