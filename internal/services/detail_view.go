package services

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"time"

	"board-web/config"
	"board-web/dto"
	"board-web/internal/models"
	"board-web/internal/repository"
	"board-web/internal/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

var (
	ErrNotAuthor  = errors.New("viewer is not the author of the post")
	ErrNotEditing = errors.New("post is not being edited")
)

// Viewer is the browser a detail request is made for.
type Viewer struct {
	ID     string
	Cred   Credentials
	Locale language.Tag
}

// DetailView is everything the board detail page renders.
type DetailView struct {
	PostID        string        `json:"id"`
	Title         string        `json:"title"`
	Body          template.HTML `json:"body"`
	CategoryKey   string        `json:"category"`
	CategoryTitle string        `json:"categoryTitle"`
	Thumbnail     string        `json:"thumbnail,omitempty"`

	AuthorName string `json:"authorName"`
	AvatarURL  string `json:"avatarUrl"`
	ProfileURL string `json:"profileUrl"`
	CreatedAt  string `json:"createdAt"`
	Views      int    `json:"views"`

	IsAuthor bool            `json:"isAuthor"`
	Mode     models.EditMode `json:"-"`
	ModeName string          `json:"mode"`
	CanEdit  bool            `json:"canEdit"`

	// Editor seed, set only in ModeEditing. DraftBody is sanitized.
	DraftTitle string `json:"draftTitle,omitempty"`
	DraftBody  string `json:"draftBody,omitempty"`

	Notice string `json:"notice,omitempty"`

	post dto.BoardPost
}

// Editing reports whether the view renders the edit form.
func (v *DetailView) Editing() bool { return v.Mode == models.ModeEditing }

type DetailService struct {
	client  *BoardClient
	drafts  repository.DraftStore
	catalog *config.Catalog
	loc     *time.Location
}

func NewDetailService(client *BoardClient, drafts repository.DraftStore, catalog *config.Catalog, loc *time.Location) *DetailService {
	return &DetailService{client: client, drafts: drafts, catalog: catalog, loc: loc}
}

// Load fetches the post and the viewer's identity concurrently and
// restores the edit state from a stored draft. Identity failures leave the
// viewer anonymous; only a failed post fetch is returned.
func (s *DetailService) Load(ctx context.Context, id string, v Viewer) (*DetailView, error) {
	var (
		post  *dto.BoardPost
		email string
	)

	var g errgroup.Group
	g.Go(func() error {
		p, err := s.client.GetBoard(ctx, id, v.Cred)
		if err != nil {
			return err
		}
		post = p
		return nil
	})
	g.Go(func() error {
		e, err := s.client.GetUserEmail(ctx, v.Cred)
		if err != nil {
			log.Debug().Err(err).Msg("viewer identity unavailable")
			return nil
		}
		email = e
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := s.present(id, *post, email, v.Locale)
	if !view.IsAuthor {
		return view, nil
	}

	d, err := s.drafts.Get(ctx, repository.DraftKey(v.ID, id))
	switch {
	case errors.Is(err, repository.ErrDraftNotFound):
	case err != nil:
		log.Warn().Err(err).Str("post", id).Msg("draft lookup failed")
	default:
		view.setEditing(d.Title, d.Body)
	}
	return view, nil
}

// EnterEdit switches the viewer to edit mode, seeding the draft from the
// displayed title and body. Entering twice keeps the existing draft.
func (s *DetailService) EnterEdit(ctx context.Context, id string, v Viewer) (*DetailView, error) {
	view, err := s.Load(ctx, id, v)
	if err != nil {
		return nil, err
	}
	if !view.IsAuthor {
		return view, ErrNotAuthor
	}
	if view.Editing() {
		return view, nil
	}

	seed := utils.Sanitize(view.post.BoardContents)
	if err := s.drafts.Save(ctx, s.draft(id, v, view.post.BoardTitle, seed, view.post.BoardCategory)); err != nil {
		return nil, err
	}
	view.setEditing(view.post.BoardTitle, seed)
	return view, nil
}

// Cancel discards the draft. The displayed post is left as fetched.
func (s *DetailService) Cancel(ctx context.Context, id string, v Viewer) (*DetailView, error) {
	if err := s.drafts.Delete(ctx, repository.DraftKey(v.ID, id)); err != nil {
		return nil, err
	}
	return s.Load(ctx, id, v)
}

// Save sends the edited title and body. On success the submitted values
// replace the displayed ones and the draft is dropped. On failure the view
// stays in edit mode with the attempted values and a notice, and the
// failure is returned with it.
func (s *DetailService) Save(ctx context.Context, id string, v Viewer, title, body string) (*DetailView, error) {
	view, err := s.Load(ctx, id, v)
	if err != nil {
		return nil, err
	}
	if !view.IsAuthor {
		return view, ErrNotAuthor
	}
	if !view.Editing() {
		return view, ErrNotEditing
	}

	if strings.TrimSpace(title) == "" {
		fail := &Failure{Op: "update", Reason: ReasonValidation, Err: errors.New("title is empty")}
		return s.keepEditing(ctx, id, v, view, title, body, fail), fail
	}

	in := dto.UpdateBoardDTO{
		BoardTitle:    title,
		BoardContents: body,
		BoardCategory: view.post.BoardCategory,
	}
	if _, err := s.client.UpdateBoard(ctx, id, in, v.Cred); err != nil {
		log.Error().Err(err).Str("post", id).Msg("board update failed")
		return s.keepEditing(ctx, id, v, view, title, body, err), err
	}

	if err := s.drafts.Delete(ctx, repository.DraftKey(v.ID, id)); err != nil {
		log.Warn().Err(err).Str("post", id).Msg("draft delete failed")
	}

	post := view.post
	post.BoardTitle = title
	post.BoardContents = body
	merged := s.present(id, post, view.viewerEmail(), v.Locale)
	return merged, nil
}

func (s *DetailService) keepEditing(ctx context.Context, id string, v Viewer, view *DetailView, title, body string, cause error) *DetailView {
	seed := utils.Sanitize(body)
	if err := s.drafts.Save(ctx, s.draft(id, v, title, seed, view.post.BoardCategory)); err != nil {
		log.Warn().Err(err).Str("post", id).Msg("draft save failed")
	}
	view.setEditing(title, seed)
	view.Notice = ReasonOf(cause).Notice()
	return view
}

func (s *DetailService) draft(id string, v Viewer, title, body, category string) models.Draft {
	// Drafts outlive the request; never keep references into its buffers.
	return models.Draft{
		Key:      repository.DraftKey(v.ID, id),
		PostID:   strings.Clone(id),
		ViewerID: strings.Clone(v.ID),
		Title:    strings.Clone(title),
		Body:     strings.Clone(body),
		Category: strings.Clone(category),
	}
}

func (s *DetailService) present(id string, p dto.BoardPost, viewerEmail string, locale language.Tag) *DetailView {
	created := ""
	if t, ok := p.CreatedDate.Time(s.loc); ok {
		created = utils.FormatLongDate(t, locale)
	}

	view := &DetailView{
		PostID:      id,
		Title:       p.BoardTitle,
		Body:        utils.SanitizedHTML(p.BoardContents),
		CategoryKey: p.BoardCategory,
		Thumbnail:   p.Thumbnail,
		AuthorName:  p.Author.UserName,
		AvatarURL:   utils.AvatarURL(p.Author.UserPic),
		ProfileURL:  utils.ProfileURL(p.Author.UID),
		CreatedAt:   created,
		Views:       p.BoardView,
		IsAuthor:    utils.IsAuthor(viewerEmail, p.Author.UserEmail),
		post:        p,
	}
	view.CategoryTitle = s.catalog.Title(view.CategoryKey)
	view.setViewing()
	return view
}

func (v *DetailView) setViewing() {
	v.Mode = models.ModeViewing
	v.ModeName = v.Mode.String()
	v.CanEdit = v.IsAuthor
	v.DraftTitle, v.DraftBody = "", ""
}

func (v *DetailView) setEditing(title, body string) {
	v.Mode = models.ModeEditing
	v.ModeName = v.Mode.String()
	v.CanEdit = false
	v.DraftTitle, v.DraftBody = title, body
}

// viewerEmail is only known to match the author's when IsAuthor is set.
func (v *DetailView) viewerEmail() string {
	if v.IsAuthor {
		return v.post.Author.UserEmail
	}
	return ""
}
