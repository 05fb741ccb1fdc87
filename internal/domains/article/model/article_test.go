package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	now := time.Now().UTC()
	hashtag := "#go"

	a, err := New(1, "title", "content", &hashtag, "uno", now)
	require.NoError(t, err)
	assert.Zero(t, a.ID)
	assert.Equal(t, "uno", a.CreatedBy)
	assert.Equal(t, "uno", a.ModifiedBy)
	assert.Equal(t, now, a.CreatedAt)
	assert.Equal(t, now, a.ModifiedAt)
}

func TestNewArticleRejectsBlankFields(t *testing.T) {
	now := time.Now().UTC()

	_, err := New(1, "   ", "content", nil, "uno", now)
	assert.ErrorIs(t, err, ErrBlankTitle)

	_, err = New(1, "title", "\t\n", nil, "uno", now)
	assert.ErrorIs(t, err, ErrBlankContent)
}

func TestNewArticleRejectsOversizedFields(t *testing.T) {
	now := time.Now().UTC()

	_, err := New(1, strings.Repeat("t", MaxTitleLength+1), "content", nil, "uno", now)
	assert.ErrorIs(t, err, ErrTitleTooLong)

	_, err = New(1, "title", strings.Repeat("c", MaxContentLength+1), nil, "uno", now)
	assert.ErrorIs(t, err, ErrContentTooLong)
}

func TestArticleEquality(t *testing.T) {
	now := time.Now().UTC()

	// Identical field values do not make transient articles equal;
	// only a shared persisted identifier does.
	a, err := New(1, "title", "content", nil, "uno", now)
	require.NoError(t, err)
	b, err := New(1, "title", "content", nil, "uno", now)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(a))

	a.ID = 7
	b.ID = 7
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))

	b.ID = 8
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestUpdateArticleRequestValidate(t *testing.T) {
	valid := "value"
	blank := "   "
	tabbed := "\t\n"

	// Absent fields are fine; present fields must survive trimming.
	assert.NoError(t, UpdateArticleRequest{}.Validate())
	assert.NoError(t, UpdateArticleRequest{Title: &valid, Content: &valid}.Validate())

	assert.Error(t, UpdateArticleRequest{Title: &blank}.Validate())
	assert.Error(t, UpdateArticleRequest{Content: &tabbed}.Validate())

	empty := ""
	assert.Error(t, UpdateArticleRequest{Title: &empty}.Validate())
}

func TestArticlePatchEmpty(t *testing.T) {
	assert.True(t, ArticlePatch{}.Empty())

	title := "t"
	assert.False(t, ArticlePatch{Title: &title}.Empty())

	blank := ""
	assert.False(t, ArticlePatch{Hashtag: &blank}.Empty())
}
