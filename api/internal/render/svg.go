package render

import (
	"encoding/base64"
	"fmt"
	"strings"

	"excuse-agency/api/internal/permit"
)

// Fixed output dimensions. The certificate is portrait, the social preview is
// the usual OG card size.
const (
	CertWidth  = 600
	CertHeight = 800

	OGWidth  = 1200
	OGHeight = 630
)

const (
	fontFamily = "Shippori Mincho"
	certPad    = 40
)

// Certificate renders the full document as an SVG. The typeface is embedded
// so the image is self-contained.
func Certificate(p permit.Presentation, doc permit.Document, font []byte) []byte {
	var b strings.Builder

	openSVG(&b, CertWidth, CertHeight, font)

	// Paper and double border.
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, CertWidth, CertHeight, p.BgColor)
	fmt.Fprintf(&b, `<rect x="8" y="8" width="%d" height="%d" fill="none" stroke="%s" stroke-width="2"/>`, CertWidth-16, CertHeight-16, p.BorderColor)
	fmt.Fprintf(&b, `<rect x="14" y="14" width="%d" height="%d" fill="none" stroke="%s" stroke-width="1"/>`, CertWidth-28, CertHeight-28, p.BorderColor)

	// Diagonal watermark of the outcome.
	fmt.Fprintf(&b, `<text x="300" y="470" transform="rotate(-35 300 400)" font-size="220" fill="%s" fill-opacity="0.06" text-anchor="middle" font-weight="bold">%s</text>`,
		p.StampColor, escapeXML(p.StampLabel))

	// Header bar: serial left, date right.
	fmt.Fprintf(&b, `<text x="%d" y="72" font-size="14" fill="%s">第%d号</text>`, certPad, p.BorderColor, p.IssueNumber)
	fmt.Fprintf(&b, `<text x="%d" y="72" font-size="14" fill="%s" text-anchor="end">%s</text>`, CertWidth-certPad, p.BorderColor, p.IssueDate)

	fmt.Fprintf(&b, `<text x="300" y="140" font-size="%d" fill="#2c2c2c" text-anchor="middle" font-weight="bold">%s</text>`,
		p.HeaderFontSize, escapeXML(p.HeaderText))
	fmt.Fprintf(&b, `<line x1="%d" y1="168" x2="%d" y2="168" stroke="%s" stroke-width="1"/>`, certPad+20, CertWidth-certPad-20, p.BorderColor)

	// Title block.
	writeLabel(&b, p.BorderColor, 215, "認定事項")
	writeBlock(&b, escapeLines(wrapRunes(doc.Title, lineWidth(p.TitleFontSize))), certPad, 252, p.TitleFontSize, p.StampColor, "bold")

	// Description.
	writeLabel(&b, p.BorderColor, 340, "事由")
	writeBlock(&b, escapeLines(wrapRunes(doc.Description, lineWidth(p.DescFontSize))), certPad, 372, p.DescFontSize, "#2c2c2c", "normal")

	// Prescription.
	writeLabel(&b, p.BorderColor, 590, "措置")
	writeBlock(&b, escapeLines(wrapRunes(doc.Prescription, lineWidth(20))), certPad, 622, 20, "#2c2c2c", "bold")

	// Issuing authority.
	fmt.Fprintf(&b, `<text x="300" y="730" font-size="18" fill="#2c2c2c" text-anchor="middle" font-weight="bold">サボり許可局</text>`)
	fmt.Fprintf(&b, `<text x="300" y="754" font-size="13" fill="%s" text-anchor="middle">発行日 %s</text>`, p.BorderColor, p.IssueDate)

	// Rotated stamp badge.
	fmt.Fprintf(&b, `<g transform="rotate(-12 480 690)">`)
	fmt.Fprintf(&b, `<rect x="425" y="655" width="110" height="70" fill="none" stroke="%s" stroke-width="4" rx="6"/>`, p.StampColor)
	fmt.Fprintf(&b, `<text x="480" y="704" font-size="36" fill="%s" text-anchor="middle" font-weight="bold">%s</text>`, p.StampColor, escapeXML(p.StampLabel))
	b.WriteString(`</g>`)

	b.WriteString(`</svg>`)
	return []byte(b.String())
}

// OGImage renders the static 1200x630 social preview. Unrelated to user input.
func OGImage(font []byte) []byte {
	var b strings.Builder

	openSVG(&b, OGWidth, OGHeight, font)

	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#f4f1ea"/>`, OGWidth, OGHeight)
	fmt.Fprintf(&b, `<rect x="8" y="8" width="%d" height="%d" fill="none" stroke="#b91c1c" stroke-width="16"/>`, OGWidth-16, OGHeight-16)

	b.WriteString(`<text x="600" y="260" font-size="80" fill="#2c2c2c" text-anchor="middle" font-weight="bold">サボり許可局</text>`)
	b.WriteString(`<text x="600" y="340" font-size="40" fill="#b91c1c" text-anchor="middle">Official Excuse Agency</text>`)
	b.WriteString(`<rect x="290" y="390" width="620" height="80" fill="none" stroke="#5c4033" stroke-width="4" rx="20"/>`)
	b.WriteString(`<text x="600" y="442" font-size="30" fill="#5c4033" text-anchor="middle">あなたの怠惰を、論理的に正当化します。</text>`)

	b.WriteString(`</svg>`)
	return []byte(b.String())
}

func openSVG(b *strings.Builder, w, h int, font []byte) {
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h)
	fmt.Fprintf(b, `<style>@font-face{font-family:%q;src:url(data:font/ttf;base64,%s);}text{font-family:%q,serif;}</style>`,
		fontFamily, base64.StdEncoding.EncodeToString(font), fontFamily)
}

func writeLabel(b *strings.Builder, color string, y int, label string) {
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="14" fill="%s" letter-spacing="4">%s</text>`, certPad, y, color, label)
}

func writeBlock(b *strings.Builder, lines []string, x, y, size int, color, weight string) {
	lineHeight := size + 8
	for i, line := range lines {
		fmt.Fprintf(b, `<text x="%d" y="%d" font-size="%d" fill="%s" font-weight="%s">%s</text>`,
			x, y+i*lineHeight, size, color, weight, line)
	}
}

// lineWidth is the number of runes that fit one line of CJK text at the given
// font size inside the padded content area.
func lineWidth(fontSize int) int {
	n := (CertWidth - 2*certPad) / fontSize
	if n < 1 {
		n = 1
	}
	return n
}

// wrapRunes breaks s into lines of at most max runes. CJK text has no word
// boundaries to respect, so a plain rune split is enough to keep every line
// inside its layout box.
func wrapRunes(s string, max int) []string {
	runes := []rune(s)
	if len(runes) <= max {
		return []string{s}
	}
	var lines []string
	for len(runes) > max {
		lines = append(lines, string(runes[:max]))
		runes = runes[max:]
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}

func escapeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = escapeXML(l)
	}
	return out
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
