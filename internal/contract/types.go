// Package contract defines the wire-level shapes exchanged between the
// client core and the API. It is the single source of truth for entity
// fields and for the ApiResponse envelope every remote call returns.
package contract

import "encoding/json"

// Envelope status codes. Every remote operation reports its outcome
// through one of these, mirrored in the HTTP status of the response.
const (
	StatusSuccess    = 200
	StatusBadRequest = 400
	StatusNotFound   = 404
	StatusError      = 500
)

// ApiResponse is the universal envelope returned by every remote call.
// Result is only meaningful when Status is StatusSuccess.
type ApiResponse struct {
	Msg    string          `json:"msg"`
	Status int             `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
}

// Success wraps result in a 200 envelope. A result that cannot be
// marshalled degrades to a 500 envelope so callers still get a valid
// ApiResponse to branch on.
func Success(result any) ApiResponse {
	res := ApiResponse{Msg: "SUCCESS", Status: StatusSuccess}
	if result == nil {
		return res
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return ServerError()
	}
	res.Result = raw

	return res
}

func BadRequest() ApiResponse {
	return ApiResponse{Msg: "BAD REQUEST", Status: StatusBadRequest}
}

func NotFound() ApiResponse {
	return ApiResponse{Msg: "NOT FOUND", Status: StatusNotFound}
}

func ServerError() ApiResponse {
	return ApiResponse{Msg: "ERROR", Status: StatusError}
}

// UserType is the role enumeration carried by User.Type.
type UserType string

const (
	UserNormal UserType = "normal"
	UserAdmin  UserType = "admin"
)

// User is an account. The (Name, Password) pair must be unique; the
// server enforces that, the client never does. ID is immutable once
// assigned.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Password string   `json:"password"`
	Type     UserType `json:"type"`
	Cover    string   `json:"cover"`
	Avatar   string   `json:"avatar"`
}

// News is an article. ID and AuthorID are immutable; Date is set once
// at creation time by the client and stored verbatim. Comments holds
// comment identifiers, not embedded comments.
type News struct {
	ID           string   `json:"id"`
	AuthorID     string   `json:"authorId"`
	Cover        string   `json:"cover"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Description  string   `json:"description"`
	MarkdownText string   `json:"markdownText"`
	Edited       bool     `json:"edited"`
	Views        int      `json:"views"`
	Likes        []string `json:"likes"`
	Comments     []string `json:"comments"`
	Tags         []string `json:"tags"`
}

// AuthorInfo is the projection of a User frozen onto a comment when it
// is written. It is not live-updated if the author later changes their
// profile.
type AuthorInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Comment struct {
	ID         string     `json:"id"`
	AuthorInfo AuthorInfo `json:"authorInfo"`
	Content    string     `json:"content"`
	Likes      []string   `json:"likes"`
	Dislikes   []string   `json:"dislikes"`
}

// Tag is a label artists and news are categorised under.
type Tag struct {
	ID    int    `json:"tagId"`
	Title string `json:"title"`
}
