package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hacsa-board/hacsa-cli/internal/common"
	"github.com/hacsa-board/hacsa-cli/internal/domain"
	"github.com/hacsa-board/hacsa-cli/internal/session"
	"github.com/hacsa-board/hacsa-cli/internal/transport"
	"github.com/hacsa-board/hacsa-cli/internal/ui"
)

// Authoring drives the write form in its two modes: creating a new
// post, or loading-then-updating an existing one.
type Authoring struct {
	client  *transport.Client
	session *session.Manager
	nav     ui.Navigator
	notify  ui.Notifier

	mu      sync.Mutex
	editID  int64 // 0 means create mode
	title   string
	content string
	errMsg  string
}

// NewAuthoring creates an authoring controller.
func NewAuthoring(client *transport.Client, sess *session.Manager, nav ui.Navigator, notify ui.Notifier) *Authoring {
	return &Authoring{client: client, session: sess, nav: nav, notify: notify}
}

// Start enters the form. postID 0 means create mode; a nonzero id
// loads that post for editing. Returns false when the user was turned
// away (not logged in, or not the author of the target post) — the
// form must not be shown in that case.
func (a *Authoring) Start(ctx context.Context, postID int64) bool {
	// Checked once on entry, not per keystroke.
	if !a.session.LoggedIn() {
		a.notify.Notify("로그인이 필요합니다")
		a.nav.ToLogin()
		return false
	}

	a.mu.Lock()
	a.editID = postID
	a.title = ""
	a.content = ""
	a.errMsg = ""
	a.mu.Unlock()

	if postID == 0 {
		return true
	}

	var post domain.Post
	if err := a.client.Get(ctx, fmt.Sprintf("/api/posts/%d", postID), &post); err != nil {
		a.mu.Lock()
		a.errMsg = "게시글을 불러오는데 실패했습니다"
		a.mu.Unlock()
		return true
	}

	if !IsAuthor(a.session.Current(), post.AuthorNickname) {
		a.notify.Notify("수정 권한이 없습니다")
		a.nav.ToBoard()
		return false
	}

	a.mu.Lock()
	a.title = post.Title
	a.content = post.Content
	a.mu.Unlock()
	return true
}

// IsEdit reports whether the form targets an existing post.
func (a *Authoring) IsEdit() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editID != 0
}

// Title returns the current form title.
func (a *Authoring) Title() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.title
}

// Content returns the current form content.
func (a *Authoring) Content() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.content
}

// ErrorMessage returns the inline form error, "" when healthy.
func (a *Authoring) ErrorMessage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}

// Submit creates or updates the post. Both trimmed title and content
// must be non-empty or the submit is rejected locally. On success the
// user is taken to the post's detail view; on failure the form keeps
// the typed input and shows the server's message.
func (a *Authoring) Submit(ctx context.Context, title, content string) {
	a.mu.Lock()
	a.title = title
	a.content = content
	id := a.editID
	a.mu.Unlock()

	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		a.mu.Lock()
		a.errMsg = "제목과 내용을 모두 입력해주세요"
		a.mu.Unlock()
		return
	}

	req := domain.WritePostRequest{Title: title, Content: content}

	if id != 0 {
		if err := a.client.Put(ctx, fmt.Sprintf("/api/posts/%d", id), req, nil); err != nil {
			a.fail(err)
			return
		}
		a.clearError()
		a.notify.Notify("게시글이 수정되었습니다")
		a.nav.ToPost(id)
		return
	}

	var created domain.Post
	if err := a.client.Post(ctx, "/api/posts", req, &created); err != nil {
		a.fail(err)
		return
	}
	a.clearError()
	a.notify.Notify("게시글이 작성되었습니다")
	a.nav.ToPost(created.ID)
}

func (a *Authoring) fail(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errMsg = common.Message(err, "작업에 실패했습니다")
}

func (a *Authoring) clearError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errMsg = ""
}
