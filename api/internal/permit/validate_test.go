package permit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReason(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "ok", in: "なんとなくだるい", want: "なんとなくだるい"},
		{name: "trimmed", in: "  働きたくない  ", want: "働きたくない"},
		{name: "single rune", in: "眠", want: "眠"},
		{name: "exactly 50 runes", in: strings.Repeat("あ", 50), want: strings.Repeat("あ", 50)},
		{name: "empty", in: "", wantErr: ErrEmptyReason},
		{name: "whitespace only", in: "   \t ", wantErr: ErrEmptyReason},
		{name: "51 runes", in: strings.Repeat("あ", 51), wantErr: ErrReasonTooLong},
		{name: "ascii over limit", in: strings.Repeat("x", 80), wantErr: ErrReasonTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateReason(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateReasonCountsRunesNotBytes(t *testing.T) {
	// 50 Japanese runes are 150 bytes; still valid.
	reason := strings.Repeat("怠", 50)
	got, err := ValidateReason(reason)
	assert.NoError(t, err)
	assert.Equal(t, reason, got)
}
