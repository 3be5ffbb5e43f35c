package report

// DocumentRenderer turns a built Document into a finished artifact. It is
// an injected capability so exports can run against a fake in tests.
type DocumentRenderer interface {
	// Render produces the document bytes.
	Render(doc *Document) ([]byte, error)
	// Ext returns the file extension for the produced artifact.
	Ext() string
}

// ForFormat returns the renderer for a format name, or nil when the
// format is unknown.
func ForFormat(format string) DocumentRenderer {
	switch format {
	case "pdf":
		return NewPDFRenderer()
	case "html":
		return NewHTMLRenderer()
	default:
		return nil
	}
}
