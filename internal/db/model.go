package db

import "newshub/internal/contract"

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID       string `pg:"userId,pk"`
	Name     string `pg:"name,use_zero"`
	Password string `pg:"password,use_zero"`
	Type     string `pg:"type,use_zero"`
	Cover    string `pg:"cover,use_zero"`
	Avatar   string `pg:"avatar,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID           string   `pg:"newsId,pk"`
	AuthorID     string   `pg:"authorId,use_zero"`
	Cover        string   `pg:"cover,use_zero"`
	Title        string   `pg:"title,use_zero"`
	Date         string   `pg:"date,use_zero"`
	Description  string   `pg:"description,use_zero"`
	MarkdownText string   `pg:"markdownText,use_zero"`
	Edited       bool     `pg:"edited,use_zero"`
	Views        int      `pg:"views,use_zero"`
	Likes        []string `pg:"likes,array"`
	Comments     []string `pg:"comments,array"`
	Tags         []string `pg:"tags,array"`
}

// Comment stores the author projection flattened; it is frozen at
// comment-creation time, matching the contract.
type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID           string   `pg:"commentId,pk"`
	AuthorID     string   `pg:"authorId,use_zero"`
	AuthorName   string   `pg:"authorName,use_zero"`
	AuthorAvatar string   `pg:"authorAvatar,use_zero"`
	Content      string   `pg:"content,use_zero"`
	Likes        []string `pg:"likes,array"`
	Dislikes     []string `pg:"dislikes,array"`
}

type Artist struct {
	tableName struct{} `pg:"artists,alias:t,discard_unknown_columns"`

	ID   string `pg:"artistId,pk"`
	Name string `pg:"name,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID    int    `pg:"tagId,pk"`
	Title string `pg:"title,use_zero"`
}

// Conversions between storage models and the wire contract. Collection
// fields come back non-nil so the wire always carries [].

func NewUser(u contract.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Password: u.Password,
		Type:     string(u.Type),
		Cover:    u.Cover,
		Avatar:   u.Avatar,
	}
}

func (u User) Contract() contract.User {
	return contract.User{
		ID:       u.ID,
		Name:     u.Name,
		Password: u.Password,
		Type:     contract.UserType(u.Type),
		Cover:    u.Cover,
		Avatar:   u.Avatar,
	}
}

func NewNews(n contract.News) News {
	return News{
		ID:           n.ID,
		AuthorID:     n.AuthorID,
		Cover:        n.Cover,
		Title:        n.Title,
		Date:         n.Date,
		Description:  n.Description,
		MarkdownText: n.MarkdownText,
		Edited:       n.Edited,
		Views:        n.Views,
		Likes:        orEmpty(n.Likes),
		Comments:     orEmpty(n.Comments),
		Tags:         orEmpty(n.Tags),
	}
}

func (n News) Contract() contract.News {
	return contract.News{
		ID:           n.ID,
		AuthorID:     n.AuthorID,
		Cover:        n.Cover,
		Title:        n.Title,
		Date:         n.Date,
		Description:  n.Description,
		MarkdownText: n.MarkdownText,
		Edited:       n.Edited,
		Views:        n.Views,
		Likes:        orEmpty(n.Likes),
		Comments:     orEmpty(n.Comments),
		Tags:         orEmpty(n.Tags),
	}
}

func NewComment(c contract.Comment) Comment {
	return Comment{
		ID:           c.ID,
		AuthorID:     c.AuthorInfo.ID,
		AuthorName:   c.AuthorInfo.Name,
		AuthorAvatar: c.AuthorInfo.Avatar,
		Content:      c.Content,
		Likes:        orEmpty(c.Likes),
		Dislikes:     orEmpty(c.Dislikes),
	}
}

func (c Comment) Contract() contract.Comment {
	return contract.Comment{
		ID: c.ID,
		AuthorInfo: contract.AuthorInfo{
			ID:     c.AuthorID,
			Name:   c.AuthorName,
			Avatar: c.AuthorAvatar,
		},
		Content:  c.Content,
		Likes:    orEmpty(c.Likes),
		Dislikes: orEmpty(c.Dislikes),
	}
}

func (t Tag) Contract() contract.Tag {
	return contract.Tag{
		ID:    t.ID,
		Title: t.Title,
	}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
