package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_FirstWord(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Playwright automation", "Playwright"},
		{"single", "single"},
		{"tab\tseparated", "tab"},
		{"", ""},
	}

	for _, tc := range cases {
		q := Query{Text: tc.text}
		assert.Equal(t, tc.want, q.FirstWord())
	}
}

func TestDefaultQueries_TableIntegrity(t *testing.T) {
	assert.NotEmpty(t, DefaultQueries)

	descriptions := make(map[string]bool)
	for _, q := range DefaultQueries {
		assert.NotEmpty(t, q.Text, "every query has text")
		assert.NotEmpty(t, q.Description, "every query has a description")
		assert.False(t, descriptions[q.Description], "description %q is duplicated", q.Description)
		descriptions[q.Description] = true
	}
}
