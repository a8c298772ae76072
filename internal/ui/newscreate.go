package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"newshub/internal/appstate"
	"newshub/internal/contract"
	"newshub/internal/remote"
)

// newsDateLayout is date plus wall-clock time with seconds dropped.
const newsDateLayout = "02/01/2006 15:04"

// NewsCreate drives the article composition screen: an empty draft
// bound to the form, the available tag list, and per-field validity
// flags.
type NewsCreate struct {
	Draft         contract.News
	AvailableTags []contract.Tag

	TitleInvalid       bool
	ContentInvalid     bool
	DescriptionInvalid bool

	store    *appstate.Store
	news     NewsGateway
	nav      Navigator
	notifier Notifier
	log      *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewNewsCreate builds the controller and fetches the tag list once.
// A failed tag fetch navigates to not-found instead of letting the
// user compose against an empty tag set.
func NewNewsCreate(
	ctx context.Context,
	store *appstate.Store,
	news NewsGateway,
	artists ArtistsGateway,
	nav Navigator,
	notifier Notifier,
	log *slog.Logger,
) *NewsCreate {
	c := &NewsCreate{
		Draft:    contract.EmptyNews("", ""),
		store:    store,
		news:     news,
		nav:      nav,
		notifier: notifier,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}

	res := artists.Tags(ctx)
	if res.Status != contract.StatusSuccess {
		nav.NavigateTo(RouteNotFound)
		return c
	}

	tags, err := remote.Result[[]contract.Tag](res)
	if err != nil {
		log.Warn("tag list unreadable", "error", err)
		nav.NavigateTo(RouteNotFound)
		return c
	}
	c.AvailableTags = tags

	return c
}

// ValidateEditInfo checks that title, content and description are all
// non-empty. It resets every field flag first, so no stale indicator
// survives a fresh pass, then marks each empty field independently.
func (c *NewsCreate) ValidateEditInfo() bool {
	result := true

	c.TitleInvalid = false
	c.ContentInvalid = false
	c.DescriptionInvalid = false

	if c.Draft.Title == "" {
		c.TitleInvalid = true
		result = false
	}

	if c.Draft.MarkdownText == "" {
		c.ContentInvalid = true
		result = false
	}

	if c.Draft.Description == "" {
		c.DescriptionInvalid = true
		result = false
	}

	return result
}

// OnCreateNews validates the draft and, if it passes, stamps a fresh
// id, the current user as author and the creation timestamp, then
// submits. Success bumps the news counter and lands on the new
// article; failure notifies and lands on the error page. No network
// call happens on a failed validation.
func (c *NewsCreate) OnCreateNews(ctx context.Context) {
	if !c.ValidateEditInfo() {
		c.notifier.Error("Please make sure that Title, Content and Description are not empty!")
		return
	}

	authorID := appstate.UserInfo(c.store.Current()).ID

	submission := c.Draft
	submission.ID = c.newID()
	submission.AuthorID = authorID
	submission.Date = c.now().Format(newsDateLayout)

	res := c.news.Create(ctx, submission)
	if res.Status == contract.StatusSuccess {
		c.notifier.Success("New news created successfully!")
		c.store.Dispatch(appstate.AddToNewsCount(1))
		c.nav.NavigateTo(RouteHome + "/news/" + submission.ID)
		return
	}

	c.log.Error("news create failed", "status", res.Status, "msg", res.Msg)
	c.notifier.Error("Failed to create the news!")
	c.nav.NavigateTo(RouteError)
}
