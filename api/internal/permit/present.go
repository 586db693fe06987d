package permit

import (
	"time"
	"unicode/utf8"
)

// Fixed palettes. The stamp is red whatever the outcome.
const (
	approvedBg     = "#f4f1ea"
	approvedBorder = "#5c4033"
	rejectedBg     = "#fdf2f2"
	rejectedBorder = "#b91c1c"
	stampRed       = "#b91c1c"

	approvedStamp = "許可"
	rejectedStamp = "却下"

	approvedHeader = "サボり許可証"
)

// IssueSource yields the cosmetic issue number. Display-only randomness, kept
// separate from the Selector's Source, which affects control flow.
type IssueSource interface {
	Intn(n int) int
}

// BuildPresentation derives the visual attributes for a document. Pure given
// now and rng; the font-size tiers bound variable-length model text to the
// renderer's fixed layout boxes.
func BuildPresentation(d Disposition, doc Document, now time.Time, rng IssueSource) Presentation {
	p := Presentation{
		BgColor:     approvedBg,
		BorderColor: approvedBorder,
		StampLabel:  approvedStamp,
		StampColor:  stampRed,
		HeaderText:  doc.Header,
		IssueNumber: 1000 + rng.Intn(8999),
		IssueDate:   now.Format("02/01/2006"),
	}
	if d.Rejected {
		p.BgColor = rejectedBg
		p.BorderColor = rejectedBorder
		p.StampLabel = rejectedStamp
	}
	if p.HeaderText == "" {
		if d.Rejected {
			p.HeaderText = RejectionHeader
		} else {
			p.HeaderText = approvedHeader
		}
	}

	p.HeaderFontSize = 42
	if utf8.RuneCountInString(p.HeaderText) > 6 {
		p.HeaderFontSize = 34
	}

	p.TitleFontSize = 32
	if utf8.RuneCountInString(doc.Title) > 12 {
		p.TitleFontSize = 24
	}

	switch n := utf8.RuneCountInString(doc.Description); {
	case n > 90:
		p.DescFontSize = 13
	case n > 60:
		p.DescFontSize = 15
	default:
		p.DescFontSize = 18
	}

	return p
}
