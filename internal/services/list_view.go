package services

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"board-web/config"
	"board-web/internal/utils"

	"github.com/rs/zerolog/log"
)

const (
	EmptyBoardLabel = "빈 게시판"
	WriteURL        = "/board/edit"
)

type CategoryTab struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

type ListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DetailURL   string `json:"detailUrl"`
	AuthorLabel string `json:"authorLabel"`
	CreatedAt   string `json:"createdAt"`
	Views       int    `json:"views"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// ListView is everything the board list page renders.
type ListView struct {
	Category   string           `json:"category"`
	Title      string           `json:"title"`
	Tabs       []CategoryTab    `json:"tabs"`
	Rows       []ListRow        `json:"rows"`
	Empty      bool             `json:"empty"`
	EmptyLabel string           `json:"emptyLabel,omitempty"`
	Pagination utils.Pagination `json:"pagination"`
	WriteURL   string           `json:"writeUrl"`
	Notice     string           `json:"notice,omitempty"`
}

type ListService struct {
	client  *BoardClient
	catalog *config.Catalog
	window  int
	loc     *time.Location
}

func NewListService(client *BoardClient, catalog *config.Catalog, window int, loc *time.Location) *ListService {
	return &ListService{client: client, catalog: catalog, window: window, loc: loc}
}

// DependencyKey identifies the list request for a category and page.
func (s *ListService) DependencyKey(category string, page int) string {
	return s.catalog.Resolve(category) + "|" + strconv.Itoa(normalizePage(page))
}

// Load fetches one page of category. The returned view is always
// renderable: on failure it is empty, has a single page and carries a
// notice, and the failure is returned alongside it.
func (s *ListService) Load(ctx context.Context, category string, page int) (ListView, error) {
	category = s.catalog.Resolve(category)
	page = normalizePage(page)

	view := ListView{
		Category: category,
		Title:    s.catalog.Title(category),
		Tabs:     s.tabs(category),
		WriteURL: WriteURL,
	}

	res, err := s.client.ListBoards(ctx, category, page)
	if err != nil {
		log.Error().Err(err).Str("category", category).Int("page", page).Msg("board list fetch failed")
		view.Rows = []ListRow{}
		view.Empty = true
		view.EmptyLabel = EmptyBoardLabel
		view.Pagination = utils.NewPagination(page, 1, s.window)
		view.Notice = ReasonOf(err).Notice()
		return view, err
	}

	view.Rows = make([]ListRow, 0, len(res.Contents))
	for _, p := range res.Contents {
		view.Rows = append(view.Rows, ListRow{
			ID:          p.BID.String(),
			Title:       p.BoardTitle,
			DetailURL:   DetailURL(p.BID.String()),
			AuthorLabel: utils.AuthorLabel(p.Author.UserTh, p.Author.UserName),
			CreatedAt:   utils.FormatDate(p.CreatedDate.ISO(s.loc)),
			Views:       p.BoardView,
			Thumbnail:   p.Thumbnail,
		})
	}
	if len(view.Rows) == 0 {
		view.Empty = true
		view.EmptyLabel = EmptyBoardLabel
	}
	view.Pagination = utils.NewPagination(page, res.TotalPages, s.window)
	return view, nil
}

func (s *ListService) tabs(active string) []CategoryTab {
	cats := s.catalog.Categories()
	tabs := make([]CategoryTab, 0, len(cats))
	for _, c := range cats {
		tabs = append(tabs, CategoryTab{
			Key:    c.Key,
			Title:  c.Title,
			URL:    ListURL(c.Key, 1),
			Active: c.Key == active,
		})
	}
	return tabs
}

func ListURL(category string, page int) string {
	q := url.Values{}
	q.Set("category", category)
	q.Set("page", strconv.Itoa(page))
	return "/board?" + q.Encode()
}

func DetailURL(id string) string {
	return "/board/detail/" + url.PathEscape(id)
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
