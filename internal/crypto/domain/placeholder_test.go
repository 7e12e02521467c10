package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEncrypted(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"placeholder", "ENC_YWJjZGVm@xx.xx", true},
		{"placeholder with odd payload characters", "ENC_a+b/c=@xx.xx", true},
		{"plain address", "alice@example.org", false},
		{"empty", "", false},
		{"prefix only", "ENC_", false},
		{"empty payload", "ENC_@xx.xx", false},
		{"wrong domain", "ENC_YWJj@xx.xy", false},
		{"missing prefix", "YWJj@xx.xx", false},
		{"lowercase prefix", "enc_YWJj@xx.xx", false},
		{"domain without at sign", "ENC_YWJjxx.xx", false},
		{"trailing whitespace", "ENC_YWJj@xx.xx ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEncrypted(tt.value))
		})
	}
}

func TestPlaceholderPayload(t *testing.T) {
	payload, ok := PlaceholderPayload(NewPlaceholder("YWJjZGVm"))
	assert.True(t, ok)
	assert.Equal(t, "YWJjZGVm", payload)

	payload, ok = PlaceholderPayload("bob@example.org")
	assert.False(t, ok)
	assert.Empty(t, payload)
}

func TestPlaceholderPayload_AgreesWithIsEncrypted(t *testing.T) {
	for _, v := range []string{"", "ENC_", "ENC_x@xx.xx", "x@xx.xx", "ENC_@xx.xx", "ENC_abc@xx.xx.xx"} {
		_, ok := PlaceholderPayload(v)
		assert.Equal(t, IsEncrypted(v), ok, v)
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("ENC_YWJj@xx.xx")
	b := Fingerprint("ENC_YWJk@xx.xx")

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Fingerprint("ENC_YWJj@xx.xx"))
	assert.False(t, strings.Contains("ENC_YWJj@xx.xx", a))
}
