package service

import (
	"slices"
	"strings"

	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// DefaultEncryptionTag marks a field for encryption in its annotation.
const DefaultEncryptionTag = "@ENCRYPTED"

// TagScanner finds tagged fields in free-text field annotations.
type TagScanner struct {
	tag string
}

// NewTagScanner creates a TagScanner for tag.
func NewTagScanner(tag string) *TagScanner {
	if tag == "" {
		tag = DefaultEncryptionTag
	}
	return &TagScanner{tag: tag}
}

// HasTag reports whether annotation carries the tag as a whitespace separated word.
// A parameterized form such as "@ENCRYPTED=x" also counts.
func (s *TagScanner) HasTag(annotation string) bool {
	for _, word := range strings.Fields(annotation) {
		if strings.EqualFold(word, s.tag) || hasFoldPrefix(word, s.tag+"=") {
			return true
		}
	}
	return false
}

// Scan returns the names of tagged fields ordered by field order.
func (s *TagScanner) Scan(fields []*recordDomain.FieldMetadata) recordDomain.TaggedFieldSet {
	ordered := slices.Clone(fields)
	slices.SortStableFunc(ordered, func(a, b *recordDomain.FieldMetadata) int {
		return a.FieldOrder - b.FieldOrder
	})

	names := make([]string, 0, len(ordered))
	for _, field := range ordered {
		if s.HasTag(field.Annotation) {
			names = append(names, field.FieldName)
		}
	}
	return recordDomain.NewTaggedFieldSet(names...)
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
