package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurveyLinkResolver_URL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		hash    string
		want    string
	}{
		{"plain base", "https://surveys.example.org/", "AbC123", "https://surveys.example.org/?s=AbC123"},
		{"base with query", "https://surveys.example.org/index.php?pid=4", "xyz", "https://surveys.example.org/index.php?pid=4&s=xyz"},
		{"hash escaped", "https://surveys.example.org/", "a b&c", "https://surveys.example.org/?s=a+b%26c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSurveyLinkResolver(tt.baseURL).URL(tt.hash))
		})
	}
}
