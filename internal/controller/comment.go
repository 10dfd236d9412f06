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
	pkglogger "github.com/hacsa-board/hacsa-cli/pkg/logger"
)

// Comments manages the comment list of one post: create, a single
// mutually exclusive inline edit, and delete. Every mutation is
// followed by a re-fetch of the whole collection; the list is never
// patched locally.
type Comments struct {
	client  *transport.Client
	session *session.Manager
	notify  ui.Notifier

	mu        sync.Mutex
	postID    int64
	items     []domain.Comment
	draft     string
	editingID int64 // 0 means no edit in progress
	editDraft string
}

// NewComments creates a comment controller.
func NewComments(client *transport.Client, sess *session.Manager, notify ui.Notifier) *Comments {
	return &Comments{client: client, session: sess, notify: notify}
}

// SetPost points the controller at a post, dropping all prior state.
func (c *Comments) SetPost(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.postID = id
	c.items = nil
	c.draft = ""
	c.editingID = 0
	c.editDraft = ""
}

// Refresh re-fetches the comment collection from the server. On failure
// the list degrades to empty; the error is returned for the caller to
// log or absorb.
func (c *Comments) Refresh(ctx context.Context) error {
	c.mu.Lock()
	id := c.postID
	c.mu.Unlock()

	var items []domain.Comment
	if err := c.client.Get(ctx, fmt.Sprintf("/api/comments/post/%d", id), &items); err != nil {
		c.mu.Lock()
		c.items = nil
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// Items returns the current comment list.
func (c *Comments) Items() []domain.Comment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Comment, len(c.items))
	copy(out, c.items)
	return out
}

// Draft returns the pending new-comment input.
func (c *Comments) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetDraft stores the new-comment input.
func (c *Comments) SetDraft(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = s
}

// Create submits a new comment. Whitespace-only content is rejected
// locally without a request. On success the draft clears and the list
// re-fetches; on failure the draft is preserved so nothing is lost.
func (c *Comments) Create(ctx context.Context, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}

	c.mu.Lock()
	id := c.postID
	c.mu.Unlock()

	req := domain.CreateCommentRequest{Content: content}
	if err := c.client.Post(ctx, fmt.Sprintf("/api/comments/post/%d", id), req, nil); err != nil {
		c.mu.Lock()
		c.draft = content
		c.mu.Unlock()
		c.notify.Notify(common.Message(err, "댓글 작성에 실패했습니다"))
		return
	}

	c.mu.Lock()
	c.draft = ""
	c.mu.Unlock()
	c.refresh(ctx)
}

// BeginEdit enters edit mode for the given comment, seeding the edit
// draft from its current content. Any other in-progress edit is
// silently discarded; at most one comment is ever in edit mode.
func (c *Comments) BeginEdit(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cm := range c.items {
		if cm.ID == id {
			c.editingID = id
			c.editDraft = cm.Content
			return
		}
	}
}

// EditingID returns the comment currently in edit mode, 0 for none.
func (c *Comments) EditingID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

// EditDraft returns the in-progress edit buffer.
func (c *Comments) EditDraft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editDraft
}

// SetEditDraft stores the in-progress edit buffer.
func (c *Comments) SetEditDraft(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editDraft = s
}

// UpdateEdit submits the active edit. Whitespace-only drafts are
// rejected locally. On success edit mode closes and the list
// re-fetches; on failure edit mode stays open for retry or cancel.
func (c *Comments) UpdateEdit(ctx context.Context) {
	c.mu.Lock()
	id := c.editingID
	draft := c.editDraft
	c.mu.Unlock()

	if id == 0 || strings.TrimSpace(draft) == "" {
		return
	}

	req := domain.CreateCommentRequest{Content: draft}
	if err := c.client.Put(ctx, fmt.Sprintf("/api/comments/%d", id), req, nil); err != nil {
		c.notify.Notify(common.Message(err, "댓글 수정에 실패했습니다"))
		return
	}

	c.mu.Lock()
	c.editingID = 0
	c.editDraft = ""
	c.mu.Unlock()
	c.refresh(ctx)
}

// CancelEdit leaves edit mode without a request. Calling it with no
// active edit is a no-op.
func (c *Comments) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = 0
	c.editDraft = ""
}

// Delete removes a comment after confirmation, then re-fetches the
// list. On failure the list is left as it was.
func (c *Comments) Delete(ctx context.Context, id int64) {
	if !c.notify.Confirm("댓글을 삭제하시겠습니까?") {
		return
	}
	if err := c.client.Delete(ctx, fmt.Sprintf("/api/comments/%d", id)); err != nil {
		c.notify.Notify(common.Message(err, "댓글 삭제에 실패했습니다"))
		return
	}
	c.refresh(ctx)
}

// IsAuthor reports whether the current identity wrote cm.
func (c *Comments) IsAuthor(cm domain.Comment) bool {
	return IsAuthor(c.session.Current(), cm.AuthorNickname)
}

func (c *Comments) refresh(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("comment list refresh failed")
	}
}
