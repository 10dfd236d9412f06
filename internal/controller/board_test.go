package controller

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_LoadPage(t *testing.T) {
	f := newFixture(t, "")
	f.mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		writePostPage(w, 3, "글 하나", "글 둘")
	})

	b := NewBoard(f.client, 10)
	b.LoadPage(context.Background(), 1)

	page := b.Page()
	assert.Equal(t, 1, page.PageIndex)
	assert.Equal(t, 3, page.TotalPages)
	assert.LessOrEqual(t, len(page.Items), 10)
	assert.Len(t, page.Items, 2)
	assert.Empty(t, b.ErrorMessage())
	assert.False(t, b.Loading())
}

func TestBoard_EmptyBoardIsNotAnError(t *testing.T) {
	f := newFixture(t, "")
	f.mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		writePostPage(w, 0)
	})

	b := NewBoard(f.client, 10)
	b.LoadPage(context.Background(), 0)

	assert.Empty(t, b.Page().Items)
	assert.Zero(t, b.Page().TotalPages)
	assert.Empty(t, b.ErrorMessage())
}

func TestBoard_PaginationBoundaries(t *testing.T) {
	f := newFixture(t, "")
	requests := 0
	f.mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writePostPage(w, 3, "글")
	})

	b := NewBoard(f.client, 10)
	ctx := context.Background()

	b.LoadPage(ctx, 0)
	assert.False(t, b.CanPrev())
	assert.True(t, b.CanNext())
	b.PrevPage(ctx)
	assert.Equal(t, 1, requests, "prev at page 0 issues no request")

	b.LoadPage(ctx, 2)
	assert.True(t, b.CanPrev())
	assert.False(t, b.CanNext())
	b.NextPage(ctx)
	assert.Equal(t, 2, requests, "next at the last page issues no request")
}

func TestBoard_SearchUsesKeywordAndResetsPage(t *testing.T) {
	f := newFixture(t, "")
	f.mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		writePostPage(w, 5, "글")
	})
	f.mux.HandleFunc("GET /api/posts/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "시험 일정", r.URL.Query().Get("keyword"))
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		writePostPage(w, 1, "중간고사 시험 일정")
	})

	b := NewBoard(f.client, 10)
	ctx := context.Background()

	b.LoadPage(ctx, 3)
	require.Equal(t, 3, b.Page().PageIndex)

	b.Search(ctx, "  시험 일정  ")

	assert.Equal(t, ModeSearching, b.Mode())
	assert.Equal(t, "시험 일정", b.Keyword())
	assert.Equal(t, 0, b.Page().PageIndex)
	assert.Equal(t, 1, b.Page().TotalPages)
}

func TestBoard_EmptySearchReturnsToListing(t *testing.T) {
	f := newFixture(t, "")
	var listingPages []string
	f.mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		listingPages = append(listingPages, r.URL.Query().Get("page"))
		writePostPage(w, 2, "글")
	})
	f.mux.HandleFunc("GET /api/posts/search", func(w http.ResponseWriter, r *http.Request) {
		writePostPage(w, 1, "검색 결과")
	})

	b := NewBoard(f.client, 10)
	ctx := context.Background()

	b.Search(ctx, "공지")
	require.Equal(t, ModeSearching, b.Mode())

	b.Search(ctx, "   ")

	assert.Equal(t, ModeListing, b.Mode())
	assert.Empty(t, b.Keyword())
	assert.Equal(t, 0, b.Page().PageIndex)
	assert.Equal(t, []string{"0"}, listingPages, "empty search behaves as a fresh page-0 listing load")
}

func TestBoard_ModeTransitionResetsPageOnce(t *testing.T) {
	f := newFixture(t, "")
	var listingPages []string
	f.mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		listingPages = append(listingPages, r.URL.Query().Get("page"))
		writePostPage(w, 9, "글")
	})
	f.mux.HandleFunc("GET /api/posts/search", func(w http.ResponseWriter, r *http.Request) {
		writePostPage(w, 9, "검색")
	})

	b := NewBoard(f.client, 10)
	ctx := context.Background()

	b.Search(ctx, "공지")
	b.LoadPage(ctx, 4) // leaving search mode lands on page 0, not 4
	b.LoadPage(ctx, 4) // staying in listing mode honors the argument

	assert.Equal(t, []string{"0", "4"}, listingPages)
	assert.Equal(t, 4, b.Page().PageIndex)
}

func TestBoard_FetchFailureKeepsPriorPage(t *testing.T) {
	f := newFixture(t, "")
	fail := false
	f.mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writePostPage(w, 2, "살아남은 글")
	})

	b := NewBoard(f.client, 10)
	ctx := context.Background()

	b.LoadPage(ctx, 0)
	require.Len(t, b.Page().Items, 1)

	fail = true
	b.LoadPage(ctx, 1)

	assert.Equal(t, "게시글을 불러오는데 실패했습니다", b.ErrorMessage())
	assert.Len(t, b.Page().Items, 1, "previous page stays next to the error")
	assert.Equal(t, "살아남은 글", b.Page().Items[0].Title)
}

func TestBoard_SearchFailureSetsSearchError(t *testing.T) {
	f := newFixture(t, "")
	f.mux.HandleFunc("GET /api/posts/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	b := NewBoard(f.client, 10)
	b.Search(context.Background(), "공지")

	assert.Equal(t, "검색에 실패했습니다", b.ErrorMessage())
}

func TestBoard_StaleResponseDiscarded(t *testing.T) {
	f := newFixture(t, "")
	started := make(chan struct{})
	release := make(chan struct{})
	f.mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "0" {
			close(started)
			<-release // hold the page-0 response until page 1 has landed
			writePostPage(w, 2, "느린 옛 응답")
			return
		}
		writePostPage(w, 2, "빠른 새 응답")
	})

	b := NewBoard(f.client, 10)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b.LoadPage(ctx, 0)
	}()
	<-started

	b.LoadPage(ctx, 1)
	close(release)
	wg.Wait()

	assert.Equal(t, 1, b.Page().PageIndex, "slow out-of-order response must not overwrite the newer page")
	assert.Equal(t, "빠른 새 응답", b.Page().Items[0].Title)
}
