// Package controller holds the board-interaction controllers: listing,
// post detail, comment lifecycle and post authoring. Controllers write
// through the shared transport and then re-read from the server; no
// mutation ever patches a local copy. Every failure is absorbed here as
// an inline error state or a notification, never re-thrown upward.
package controller

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/hacsa-board/hacsa-cli/internal/domain"
	"github.com/hacsa-board/hacsa-cli/internal/transport"
)

// BoardMode selects the listing data source.
type BoardMode int

const (
	// ModeListing pages through the unfiltered board.
	ModeListing BoardMode = iota
	// ModeSearching pages through keyword-filtered results.
	ModeSearching
)

// Board drives the paginated/searchable post listing.
type Board struct {
	client   *transport.Client
	pageSize int

	mu      sync.Mutex
	mode    BoardMode
	keyword string
	page    domain.PostPage
	errMsg  string
	loading bool
	seq     uint64 // last issued fetch
	applied uint64 // last applied response
}

// NewBoard creates a listing controller with the given page size.
func NewBoard(client *transport.Client, pageSize int) *Board {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Board{client: client, pageSize: pageSize}
}

// LoadPage fetches page pageIndex in listing mode. Coming from search
// mode resets to page 0 regardless of the argument; staying in listing
// mode honors it.
func (b *Board) LoadPage(ctx context.Context, pageIndex int) {
	b.mu.Lock()
	if b.mode != ModeListing {
		b.mode = ModeListing
		b.keyword = ""
		pageIndex = 0
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	seq := b.beginFetch()
	b.mu.Unlock()

	b.fetch(ctx, seq, ModeListing, "", pageIndex)
}

// Search switches to keyword-filtered results at page 0. An empty or
// whitespace-only keyword clears any active filter instead.
func (b *Board) Search(ctx context.Context, keyword string) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		b.mu.Lock()
		b.mode = ModeListing
		b.keyword = ""
		b.mu.Unlock()
		b.LoadPage(ctx, 0)
		return
	}

	b.mu.Lock()
	b.mode = ModeSearching
	b.keyword = kw
	seq := b.beginFetch()
	b.mu.Unlock()

	b.fetch(ctx, seq, ModeSearching, kw, 0)
}

// NextPage advances one page within the current mode. No-op at the
// last page.
func (b *Board) NextPage(ctx context.Context) {
	b.step(ctx, +1)
}

// PrevPage goes back one page within the current mode. No-op at page 0.
func (b *Board) PrevPage(ctx context.Context) {
	b.step(ctx, -1)
}

func (b *Board) step(ctx context.Context, delta int) {
	b.mu.Lock()
	target := b.page.PageIndex + delta
	if target < 0 || target >= b.page.TotalPages {
		b.mu.Unlock()
		return
	}
	mode, kw := b.mode, b.keyword
	seq := b.beginFetch()
	b.mu.Unlock()

	b.fetch(ctx, seq, mode, kw, target)
}

// CanPrev reports whether a previous page exists.
func (b *Board) CanPrev() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page.PageIndex > 0
}

// CanNext reports whether a next page exists.
func (b *Board) CanNext() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page.PageIndex < b.page.TotalPages-1
}

// Page returns the currently applied page.
func (b *Board) Page() domain.PostPage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

// Mode returns the active data source.
func (b *Board) Mode() BoardMode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// Keyword returns the active search keyword, "" in listing mode.
func (b *Board) Keyword() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.keyword
}

// ErrorMessage returns the inline listing error, "" when healthy.
func (b *Board) ErrorMessage() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}

// Loading reports whether a fetch is in flight.
func (b *Board) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// beginFetch issues the next sequence number. Caller holds b.mu.
func (b *Board) beginFetch() uint64 {
	b.seq++
	b.loading = true
	return b.seq
}

func (b *Board) fetch(ctx context.Context, seq uint64, mode BoardMode, keyword string, pageIndex int) {
	var path, failMsg string
	if mode == ModeSearching {
		path = fmt.Sprintf("/api/posts/search?keyword=%s&page=%d&size=%d",
			url.QueryEscape(keyword), pageIndex, b.pageSize)
		failMsg = "검색에 실패했습니다"
	} else {
		path = fmt.Sprintf("/api/posts?page=%d&size=%d", pageIndex, b.pageSize)
		failMsg = "게시글을 불러오는데 실패했습니다"
	}

	var resp domain.PostListResponse
	err := b.client.Get(ctx, path, &resp)

	b.mu.Lock()
	defer b.mu.Unlock()

	// A newer fetch already applied its page; this response is stale.
	if seq <= b.applied {
		return
	}
	b.applied = seq
	b.loading = false

	if err != nil {
		// Prior page stays in place next to the error message.
		b.errMsg = failMsg
		return
	}

	b.errMsg = ""
	b.page = domain.PostPage{
		Items:      resp.Content,
		PageIndex:  pageIndex,
		TotalPages: resp.TotalPages,
	}
}
