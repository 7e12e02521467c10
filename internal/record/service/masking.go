package service

import (
	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// DefaultMaskToken is shown instead of a placeholder when no token is configured.
const DefaultMaskToken = "[encrypted]"

// Masker hides placeholders on read surfaces. It never decrypts and never needs the key.
type Masker struct {
	token string
}

// NewMasker creates a Masker showing token in place of placeholders.
func NewMasker(token string) *Masker {
	if token == "" {
		token = DefaultMaskToken
	}
	return &Masker{token: token}
}

// Token returns the display token.
func (m *Masker) Token() string {
	return m.token
}

// Mask returns the display token when fieldName is tagged and value is a placeholder,
// value otherwise.
func (m *Masker) Mask(value string, tagged recordDomain.TaggedFieldSet, fieldName string) string {
	if tagged.Contains(fieldName) && cryptoDomain.IsEncrypted(value) {
		return m.token
	}
	return value
}

// MaskValues returns a masked copy of values.
func (m *Masker) MaskValues(values recordDomain.Values, tagged recordDomain.TaggedFieldSet) recordDomain.Values {
	masked := make(recordDomain.Values, len(values))
	for name, value := range values {
		masked[name] = m.Mask(value, tagged, name)
	}
	return masked
}

// MaskRows masks every row in place and returns rows.
func (m *Masker) MaskRows(rows []*recordDomain.Row, tagged recordDomain.TaggedFieldSet) []*recordDomain.Row {
	for _, row := range rows {
		row.Values = m.MaskValues(row.Values, tagged)
	}
	return rows
}
