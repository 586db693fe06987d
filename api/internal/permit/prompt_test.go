package permit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptApproved(t *testing.T) {
	p := BuildPrompt(Disposition{Register: RegisterNormal}, "なんとなくだるい")

	assert.Contains(t, p, "なんとなくだるい")
	assert.Contains(t, p, "許可担当官")
	assert.Contains(t, p, "サボり許可証")
	// The structured output contract.
	assert.Contains(t, p, `"header"`)
	assert.Contains(t, p, `"title"`)
	assert.Contains(t, p, `"description"`)
	assert.Contains(t, p, `"prescription"`)
	assert.Contains(t, p, "JSONオブジェクトひとつのみ")
	assert.NotContains(t, p, RejectionHeader)
}

func TestBuildPromptRejected(t *testing.T) {
	p := BuildPrompt(Disposition{Rejected: true}, "働きたくない")

	assert.Contains(t, p, "働きたくない")
	assert.Contains(t, p, "審査官")
	assert.Contains(t, p, RejectionHeader)
	assert.Contains(t, p, `"prescription"`)
}

func TestBuildPromptRegisterChangesDescriptionGuidance(t *testing.T) {
	terse := BuildPrompt(Disposition{Register: RegisterTerse}, "眠い")
	normal := BuildPrompt(Disposition{Register: RegisterNormal}, "眠い")
	verbose := BuildPrompt(Disposition{Register: RegisterVerbose}, "眠い")

	assert.NotEqual(t, terse, normal)
	assert.NotEqual(t, normal, verbose)
	assert.Contains(t, terse, "一文")
	assert.Contains(t, verbose, "冗長")
}
