package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSearch(t *testing.T) {
	t.Run("blank keyword ignores the search type", func(t *testing.T) {
		for _, st := range []SearchType{"", SearchTypeTitle, SearchTypeHashtag, "bogus"} {
			for _, kw := range []string{"", "   ", "\t"} {
				q, err := ResolveSearch(st, kw)
				require.NoError(t, err)
				assert.True(t, q.Unfiltered())
			}
		}
	})

	t.Run("title, content and author fields pass the keyword through", func(t *testing.T) {
		cases := []struct {
			searchType SearchType
			field      SearchField
		}{
			{SearchTypeTitle, FieldTitle},
			{SearchTypeContent, FieldContent},
			{SearchTypeAuthorLoginID, FieldAuthorLoginID},
			{SearchTypeAuthorNickname, FieldAuthorNickname},
		}

		for _, tc := range cases {
			q, err := ResolveSearch(tc.searchType, "spring")
			require.NoError(t, err)
			assert.Equal(t, tc.field, q.Field)
			assert.Equal(t, "spring", q.Keyword)
			assert.False(t, q.Unfiltered())
		}
	})

	t.Run("hashtag keyword gets the # prefix", func(t *testing.T) {
		q, err := ResolveSearch(SearchTypeHashtag, "java")
		require.NoError(t, err)
		assert.Equal(t, FieldHashtag, q.Field)
		assert.Equal(t, "#java", q.Keyword)
	})

	t.Run("keyword is trimmed before dispatch", func(t *testing.T) {
		q, err := ResolveSearch(SearchTypeTitle, "  boot  ")
		require.NoError(t, err)
		assert.Equal(t, "boot", q.Keyword)
	})

	t.Run("unrecognized type with a keyword fails fast", func(t *testing.T) {
		_, err := ResolveSearch("summary", "java")
		assert.ErrorIs(t, err, ErrInvalidSearchType)

		_, err = ResolveSearch("", "java")
		assert.ErrorIs(t, err, ErrInvalidSearchType)
	})
}
