package permit

import (
	"fmt"
	"strings"
)

// RejectionHeader is the mandated header of a rejected application's document.
const RejectionHeader = "却下通知書"

// BuildPrompt composes the instruction sent to the model. Both branches demand
// a single JSON object with exactly the fields header, title, description,
// prescription and no surrounding prose.
func BuildPrompt(d Disposition, reason string) string {
	var parts []string

	if d.Rejected {
		parts = append(parts,
			"あなたは厳格な審査官です。以下のサボり申請を容赦なく却下してください。",
			fmt.Sprintf("申請理由：「%s」", reason),
			"出力要件：",
			fmt.Sprintf("- header は必ず「%s」とする。", RejectionHeader),
			"- title は短く辛辣な却下事由。",
			"- description は申請理由への反論（80文字以内）。",
			"- prescription は命令口調の是正指示（30文字以内）。",
		)
	} else {
		parts = append(parts,
			"あなたは官僚機構の許可担当官です。以下のサボり申請を官僚的に正当化する許可証を発行してください。",
			fmt.Sprintf("申請理由：「%s」", reason),
			"出力要件：",
			"- header は証書の種別。「サボり許可証」「休息命令書」「怠惰認可状」などから最適なものを選ぶ。",
			"- title はもっともらしい漢語を多用した認定名。",
			describeLine(d.Register),
			"- prescription は穏やかな言葉で休み方を指示する。",
		)
	}

	parts = append(parts,
		"応答は次の形式のJSONオブジェクトひとつのみ。前後に文章を置かないこと。",
		`{ "header": "...", "title": "...", "description": "...", "prescription": "..." }`,
	)

	return strings.Join(parts, "\n")
}

func describeLine(r Register) string {
	switch r {
	case RegisterTerse:
		return "- description は素っ気ない一文で認定理由を述べる（100文字以内）。"
	case RegisterVerbose:
		return "- description は条文を引くように冗長で衒学的な認定理由を述べる（100文字以内）。"
	default:
		return "- description は通常の文体で認定理由を述べる（100文字以内）。"
	}
}
