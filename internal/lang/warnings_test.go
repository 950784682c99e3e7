package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningName(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		target string
		want   string
	}{
		{name: "heavy rain warning english", code: "03", target: "en", want: "Heavy Rain Warning"},
		{name: "heavy rain warning japanese", code: "03", target: "ja", want: "大雨警報"},
		{name: "emergency warning korean", code: "33", target: "ko", want: "호우 특별 경보"},
		{name: "uncovered language falls back to english", code: "03", target: "fr", want: "Heavy Rain Warning"},
		{name: "unknown code", code: "99", target: "en", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WarningName(tt.code, tt.target))
		})
	}
}

func TestWarningSeverity(t *testing.T) {
	assert.Equal(t, "high", WarningSeverity("03"))
	assert.Equal(t, "medium", WarningSeverity("10"))
	assert.Equal(t, "low", WarningSeverity("20"))
	assert.Equal(t, "extreme", WarningSeverity("33"))
	assert.Equal(t, "", WarningSeverity("99"))
}

func TestKnownWarningCode(t *testing.T) {
	assert.True(t, KnownWarningCode("02"))
	assert.True(t, KnownWarningCode("38"))
	assert.False(t, KnownWarningCode("01"))
	assert.False(t, KnownWarningCode(""))
}

func TestWarningArea(t *testing.T) {
	assert.Equal(t, "Tokyo Area", WarningArea("東京地方", "en"))
	assert.Equal(t, "東京地方", WarningArea("東京地方", "ja"))
	// Unregistered areas keep the Japanese name.
	assert.Equal(t, "多摩地方", WarningArea("多摩地方", "en"))
	assert.Equal(t, "東京地方", WarningArea("東京地方", "fr"))
}

func TestWarningDescription(t *testing.T) {
	got := WarningDescription("Tokyo Area", "Heavy Rain Warning", "en")
	assert.Equal(t, "Heavy Rain Warning has been issued for Tokyo Area.", got)

	got = WarningDescription("東京地方", "大雨警報", "ja")
	assert.Equal(t, "東京地方に大雨警報が発表されています。", got)

	// Languages without a template use the English one.
	got = WarningDescription("Tokyo", "Avertissement", "fr")
	assert.Equal(t, "Avertissement has been issued for Tokyo.", got)
}
