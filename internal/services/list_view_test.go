package services

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"board-web/config"
)

const listJSON = `{
  "contents": [
    {"bid":"3","boardTitle":"third","boardView":12,"boardCategory":"NOTICE",
     "userResponseDto":{"uid":1,"userName":"kim","userTh":5},"createdDate":"2024-05-01T09:07:33"},
    {"bid":"2","boardTitle":"second","boardView":0,"boardCategory":"NOTICE",
     "userResponseDto":{"uid":2,"userName":"lee","userTh":6},"createdDate":"garbage"}
  ],
  "totalPages": 12
}`

func newListService(t *testing.T, h http.Handler) *ListService {
	t.Helper()
	return NewListService(newTestClient(t, h), config.DefaultCatalog(), 5, time.UTC)
}

func TestListLoadRows(t *testing.T) {
	var gotCategory, gotPage string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /board/list", func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		gotPage = r.URL.Query().Get("page")
		io.WriteString(w, listJSON)
	})
	s := newListService(t, mux)

	view, err := s.Load(context.Background(), "NOTICE", 7)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotCategory != "NOTICE" || gotPage != "6" {
		t.Errorf("request category=%q page=%q", gotCategory, gotPage)
	}
	if view.Empty || len(view.Rows) != 2 {
		t.Fatalf("rows = %+v", view.Rows)
	}

	first := view.Rows[0]
	if first.ID != "3" || first.DetailURL != "/board/detail/3" || first.AuthorLabel != "5기 kim" ||
		first.CreatedAt != "2024-05-01 09:07" || first.Views != 12 {
		t.Errorf("first row = %+v", first)
	}
	if view.Rows[1].CreatedAt != "" {
		t.Errorf("malformed date rendered as %q, want blank", view.Rows[1].CreatedAt)
	}

	pg := view.Pagination
	if pg.Current != 7 || pg.Total != 12 || len(pg.Pages) != 5 || pg.Pages[0] != 6 {
		t.Errorf("pagination = %+v", pg)
	}
	if view.WriteURL != "/board/edit" {
		t.Errorf("WriteURL = %q", view.WriteURL)
	}
}

func TestListLoadEmpty(t *testing.T) {
	s := newListService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"contents":[],"totalPages":0}`)
	}))

	view, err := s.Load(context.Background(), "GALLERY", 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !view.Empty || len(view.Rows) != 0 || view.EmptyLabel != EmptyBoardLabel {
		t.Errorf("empty view = %+v", view)
	}
	if view.Pagination.Total != 1 {
		t.Errorf("Total = %d, want 1", view.Pagination.Total)
	}
}

func TestListLoadFailureRendersEmptyWithNotice(t *testing.T) {
	s := newListService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	view, err := s.Load(context.Background(), "NOTICE", 3)
	if ReasonOf(err) != ReasonUpstream {
		t.Fatalf("err = %v, want upstream failure", err)
	}
	if !view.Empty || len(view.Rows) != 0 || view.Notice == "" {
		t.Errorf("failure view = %+v", view)
	}
	if view.Pagination.Total != 1 || view.Pagination.Current != 1 {
		t.Errorf("pagination = %+v", view.Pagination)
	}
}

func TestListLoadResolvesCategoryAndPage(t *testing.T) {
	var gotCategory, gotPage string
	s := newListService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		gotPage = r.URL.Query().Get("page")
		io.WriteString(w, `{"contents":[],"totalPages":1}`)
	}))

	view, err := s.Load(context.Background(), "BOGUS", -4)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotCategory != "NOTICE" || gotPage != "0" {
		t.Errorf("request category=%q page=%q", gotCategory, gotPage)
	}
	if view.Category != "NOTICE" || view.Title != "게시판" {
		t.Errorf("category = %q title = %q", view.Category, view.Title)
	}

	active := 0
	for _, tab := range view.Tabs {
		if tab.Active {
			active++
			if tab.Key != "NOTICE" {
				t.Errorf("active tab = %q", tab.Key)
			}
		}
		if tab.URL != "/board?category="+tab.Key+"&page=1" {
			t.Errorf("tab URL = %q", tab.URL)
		}
	}
	if active != 1 {
		t.Errorf("%d active tabs, want 1", active)
	}
}

func TestListDependencyKey(t *testing.T) {
	s := NewListService(nil, config.DefaultCatalog(), 5, time.UTC)
	if got := s.DependencyKey("GALLERY", 2); got != "GALLERY|2" {
		t.Errorf("DependencyKey = %q", got)
	}
	if got := s.DependencyKey("", 0); got != "NOTICE|1" {
		t.Errorf("DependencyKey = %q", got)
	}
}
