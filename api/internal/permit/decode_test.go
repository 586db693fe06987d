package permit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  \n```json\n{\"a\":1}\n```  \n", want: `{"a":1}`},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestDecodeDocument(t *testing.T) {
	raw := "```json\n" + `{"header":"サボり許可証","title":"認定","description":"事由","prescription":"措置"}` + "\n```"
	doc, err := DecodeDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, "サボり許可証", doc.Header)
	assert.Equal(t, "認定", doc.Title)
	assert.Equal(t, "事由", doc.Description)
	assert.Equal(t, "措置", doc.Prescription)
}

func TestDecodeDocumentHeaderOptional(t *testing.T) {
	doc, err := DecodeDocument(`{"title":"X","description":"Y","prescription":"Z"}`)
	require.NoError(t, err)
	assert.Empty(t, doc.Header)
	assert.Equal(t, "X", doc.Title)
}

func TestDecodeDocumentFailures(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "fences only", in: "```json\n```"},
		{name: "not json", in: "申し訳ありませんが、JSONを出力できません。"},
		{name: "truncated", in: `{"title":"X","description":`},
		{name: "missing title", in: `{"description":"Y","prescription":"Z"}`},
		{name: "missing description", in: `{"title":"X","prescription":"Z"}`},
		{name: "missing prescription", in: `{"title":"X","description":"Y"}`},
		{name: "whitespace fields", in: `{"title":"  ","description":"Y","prescription":"Z"}`},
		{name: "array", in: `[{"title":"X"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument(tt.in)
			assert.Error(t, err)
		})
	}
}
