package permit

// Register controls how verbose the approved document's description is.
type Register int

const (
	RegisterTerse Register = iota
	RegisterNormal
	RegisterVerbose
)

func (r Register) String() string {
	switch r {
	case RegisterTerse:
		return "terse"
	case RegisterVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// Disposition is the drawn outcome of an application. Register is only
// meaningful when Rejected is false.
type Disposition struct {
	Rejected bool
	Register Register
}

// Document is the structured record the model must return. Header may be
// empty; the presentation layer substitutes a disposition default.
type Document struct {
	Header       string `json:"header"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Prescription string `json:"prescription"`
}

// FallbackDocument replaces the model output wholesale whenever the upstream
// call or its decoding fails. The user always receives a certificate.
var FallbackDocument = Document{
	Header:       "緊急救済命令書",
	Title:        "重大システム障害",
	Description:  "あなたの怠惰への熱意が強すぎたため、思考エンジンは処理を放棄しました",
	Prescription: "何も考えず泥のように眠ること",
}

// Presentation holds the derived visual attributes consumed by the renderer.
type Presentation struct {
	BgColor     string
	BorderColor string

	StampLabel string
	StampColor string

	HeaderText string

	HeaderFontSize int
	TitleFontSize  int
	DescFontSize   int

	IssueNumber int
	IssueDate   string
}
