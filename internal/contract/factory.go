package contract

// EmptyUser returns a User with the given id and every other field at
// its zero value. Edit forms bind to the result before real data
// arrives, so no partial User is ever constructed elsewhere.
func EmptyUser(id string) User {
	return User{
		ID:       id,
		Name:     "",
		Password: "",
		Type:     UserNormal,
		Cover:    "",
		Avatar:   "",
	}
}

// EmptyNews returns a News with the given id and author and all
// collections initialised to empty, non-nil slices.
func EmptyNews(id, authorID string) News {
	return News{
		ID:           id,
		AuthorID:     authorID,
		Cover:        "",
		Title:        "",
		Date:         "",
		Description:  "",
		MarkdownText: "",
		Edited:       false,
		Views:        0,
		Likes:        []string{},
		Comments:     []string{},
		Tags:         []string{},
	}
}

// EmptyComment returns a Comment with the given id and a frozen author
// projection holding only the author id.
func EmptyComment(id, authorID string) Comment {
	return Comment{
		ID: id,
		AuthorInfo: AuthorInfo{
			ID:     authorID,
			Name:   "",
			Avatar: "",
		},
		Content:  "",
		Likes:    []string{},
		Dislikes: []string{},
	}
}
