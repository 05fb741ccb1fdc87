package model

import "strings"

// SearchType is the caller-facing enumeration of searchable fields.
type SearchType string

const (
	SearchTypeTitle          SearchType = "title"
	SearchTypeContent        SearchType = "content"
	SearchTypeAuthorLoginID  SearchType = "author_login_id"
	SearchTypeAuthorNickname SearchType = "author_nickname"
	SearchTypeHashtag        SearchType = "hashtag"
)

// SearchField is the resolved dispatch target. The set is closed;
// repositories switch over it exhaustively.
type SearchField int

const (
	// FieldNone means no filter: the full listing.
	FieldNone SearchField = iota
	FieldTitle
	FieldContent
	FieldAuthorLoginID
	FieldAuthorNickname
	FieldHashtag
)

// SearchQuery is the resolved form of a search request: one field
// variant plus the keyword to match against it.
type SearchQuery struct {
	Field   SearchField
	Keyword string
}

// Unfiltered reports whether the query selects everything.
func (q SearchQuery) Unfiltered() bool {
	return q.Field == FieldNone
}

// ResolveSearch maps a search type and keyword to the query form,
// exactly once per search call.
//
// A keyword that is empty after trimming short-circuits to the
// unfiltered listing regardless of search type. Otherwise the type
// picks the field: title, content, author login id and author
// nickname match as case-insensitive substrings; hashtag matches
// exactly against "#"+keyword (callers pass the bare tag word).
// A non-blank keyword with an unrecognized type is a contract
// violation and fails fast.
func ResolveSearch(searchType SearchType, keyword string) (SearchQuery, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return SearchQuery{Field: FieldNone}, nil
	}

	switch searchType {
	case SearchTypeTitle:
		return SearchQuery{Field: FieldTitle, Keyword: keyword}, nil
	case SearchTypeContent:
		return SearchQuery{Field: FieldContent, Keyword: keyword}, nil
	case SearchTypeAuthorLoginID:
		return SearchQuery{Field: FieldAuthorLoginID, Keyword: keyword}, nil
	case SearchTypeAuthorNickname:
		return SearchQuery{Field: FieldAuthorNickname, Keyword: keyword}, nil
	case SearchTypeHashtag:
		return SearchQuery{Field: FieldHashtag, Keyword: "#" + keyword}, nil
	default:
		return SearchQuery{}, ErrInvalidSearchType
	}
}
