package rfc

// Format identifies the wire format a document was parsed from.
type Format string

// Supported source formats, in order of preference.
const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// Result is the outcome of attempting a single format variant.
// Exactly one of Document and Err is set.
type Result struct {
	Format   Format
	URL      string
	Document *Document
	Err      error
}

// OK reports whether the attempt produced a document.
func (r Result) OK() bool {
	return r.Err == nil && r.Document != nil
}
