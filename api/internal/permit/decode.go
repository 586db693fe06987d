package permit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFences removes markdown fence markers models like to wrap JSON in,
// regardless of language tag.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// DecodeDocument strictly decodes raw model text into a Document. It returns
// the decode failure to the caller; substituting FallbackDocument is the
// caller's decision, so the failure mode stays inspectable.
func DecodeDocument(raw string) (Document, error) {
	txt := StripCodeFences(raw)
	if txt == "" {
		return Document{}, fmt.Errorf("decode document: empty response")
	}

	var doc Document
	if err := json.Unmarshal([]byte(txt), &doc); err != nil {
		return Document{}, fmt.Errorf("decode document: bad JSON: %w", err)
	}

	doc.Header = strings.TrimSpace(doc.Header)
	doc.Title = strings.TrimSpace(doc.Title)
	doc.Description = strings.TrimSpace(doc.Description)
	doc.Prescription = strings.TrimSpace(doc.Prescription)

	switch {
	case doc.Title == "":
		return Document{}, fmt.Errorf("decode document: missing title")
	case doc.Description == "":
		return Document{}, fmt.Errorf("decode document: missing description")
	case doc.Prescription == "":
		return Document{}, fmt.Errorf("decode document: missing prescription")
	}
	return doc, nil
}
