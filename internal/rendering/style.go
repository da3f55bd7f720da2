package rendering

import "github.com/jonathan/resume-renderer/internal/templates"

// Style carries the parameters every section renderer receives alongside its
// data slice. Values are CSS lengths/colors injected into the generated
// stylesheet.
type Style struct {
	AccentColor string
	FontFamily  string
	FontSize    string
	LineHeight  string
	PageMargin  string
}

// StyleFor derives the render style from a template's metadata. The page
// margin styles on-screen previews only; PDF margins are owned by the export
// pipeline (see internal/pdf).
func StyleFor(cfg templates.Config) Style {
	st := Style{
		AccentColor: cfg.AccentColor,
		FontFamily:  `"Helvetica Neue", Arial, sans-serif`,
		FontSize:    "10.5pt",
		LineHeight:  "1.45",
		PageMargin:  "0.25in",
	}
	switch cfg.ID {
	case "classic":
		st.FontFamily = `Georgia, "Times New Roman", serif`
		st.FontSize = "11pt"
	case "minimal":
		st.FontSize = "10pt"
		st.LineHeight = "1.35"
	}
	return st
}
