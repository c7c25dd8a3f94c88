package ticket

// Document is a rich-text description holding one paragraph with one text run.
type Document struct {
	Type    string      `json:"type"`
	Version int         `json:"version"`
	Content []Paragraph `json:"content"`
}

// Paragraph is a block node of text runs.
type Paragraph struct {
	Type    string `json:"type"`
	Content []Text `json:"content"`
}

// Text is a leaf node. Text is always encoded, even when empty.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewDocument wraps text verbatim in a single-paragraph document.
func NewDocument(text string) Document {
	return Document{
		Type:    "doc",
		Version: 1,
		Content: []Paragraph{{
			Type:    "paragraph",
			Content: []Text{{Type: "text", Text: text}},
		}},
	}
}

// PlainText concatenates the text runs of every paragraph, separating
// paragraphs with a newline.
func (d Document) PlainText() string {
	var out []byte
	for i, p := range d.Content {
		if i > 0 {
			out = append(out, '\n')
		}
		for _, t := range p.Content {
			out = append(out, t.Text...)
		}
	}
	return string(out)
}
