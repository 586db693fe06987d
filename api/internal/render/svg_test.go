package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"excuse-agency/api/internal/permit"
)

var testPresentation = permit.Presentation{
	BgColor:        "#f4f1ea",
	BorderColor:    "#5c4033",
	StampLabel:     "許可",
	StampColor:     "#b91c1c",
	HeaderText:     "サボり許可証",
	HeaderFontSize: 42,
	TitleFontSize:  32,
	DescFontSize:   18,
	IssueNumber:    1234,
	IssueDate:      "31/08/2026",
}

func TestCertificateLayout(t *testing.T) {
	doc := permit.Document{Title: "X", Description: "Y", Prescription: "Z"}
	svg := string(Certificate(testPresentation, doc, []byte("fontdata")))

	assert.Contains(t, svg, `width="600" height="800"`)
	assert.Contains(t, svg, ">X</text>")
	assert.Contains(t, svg, ">Y</text>")
	assert.Contains(t, svg, ">Z</text>")
	assert.Contains(t, svg, "サボり許可証")
	assert.Contains(t, svg, "第1234号")
	assert.Contains(t, svg, "31/08/2026")
	assert.Contains(t, svg, "許可")
	assert.Contains(t, svg, "サボり許可局")
	// Embedded typeface, base64 of "fontdata".
	assert.Contains(t, svg, "Zm9udGRhdGE=")
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestCertificateRejectionPalette(t *testing.T) {
	p := testPresentation
	p.BgColor = "#fdf2f2"
	p.BorderColor = "#b91c1c"
	p.StampLabel = "却下"
	p.HeaderText = "却下通知書"

	svg := string(Certificate(p, permit.Document{Title: "X", Description: "Y", Prescription: "Z"}, []byte("f")))
	assert.Contains(t, svg, "#fdf2f2")
	assert.Contains(t, svg, "却下")
	assert.NotContains(t, svg, "#f4f1ea")
}

func TestCertificateEscapesModelText(t *testing.T) {
	doc := permit.Document{
		Title:        `<script>alert("x")</script>`,
		Description:  "A & B",
		Prescription: "Z",
	}
	svg := string(Certificate(testPresentation, doc, []byte("f")))

	assert.NotContains(t, svg, "<script>")
	assert.Contains(t, svg, "&lt;script&gt;")
	assert.Contains(t, svg, "A &amp; B")
}

func TestCertificateWrapsLongDescription(t *testing.T) {
	long := strings.Repeat("あ", 95)
	doc := permit.Document{Title: "X", Description: long, Prescription: "Z"}

	p := testPresentation
	p.DescFontSize = 13
	svg := string(Certificate(p, doc, []byte("f")))

	// No single text element may carry the whole run.
	assert.NotContains(t, svg, ">"+long+"<")
	assert.Contains(t, svg, "あ")
}

func TestWrapRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want []string
	}{
		{name: "fits", in: "短い", max: 10, want: []string{"短い"}},
		{name: "exact", in: "あいう", max: 3, want: []string{"あいう"}},
		{name: "split", in: "あいうえお", max: 2, want: []string{"あい", "うえ", "お"}},
		{name: "empty", in: "", max: 5, want: []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapRunes(tt.in, tt.max))
		})
	}
}

func TestOGImage(t *testing.T) {
	svg := string(OGImage([]byte("fontdata")))

	assert.Contains(t, svg, `width="1200" height="630"`)
	assert.Contains(t, svg, "サボり許可局")
	assert.Contains(t, svg, "Official Excuse Agency")
	assert.Contains(t, svg, "あなたの怠惰を、論理的に正当化します。")
	assert.Contains(t, svg, "Zm9udGRhdGE=")
}
