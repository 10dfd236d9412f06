package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hacsa-board/hacsa-cli/internal/common"
	"github.com/hacsa-board/hacsa-cli/internal/domain"
	"github.com/hacsa-board/hacsa-cli/internal/session"
	"github.com/hacsa-board/hacsa-cli/internal/transport"
	"github.com/hacsa-board/hacsa-cli/internal/ui"
	pkglogger "github.com/hacsa-board/hacsa-cli/pkg/logger"
)

// Detail loads a single post together with its comments and owns the
// post-level delete.
type Detail struct {
	client   *transport.Client
	session  *session.Manager
	comments *Comments
	nav      ui.Navigator
	notify   ui.Notifier

	mu       sync.Mutex
	postID   int64
	post     *domain.Post
	errMsg   string
	notFound bool
	loading  bool
}

// NewDetail creates a detail controller sharing the comment controller
// so that both views see one comment list.
func NewDetail(client *transport.Client, sess *session.Manager, comments *Comments, nav ui.Navigator, notify ui.Notifier) *Detail {
	return &Detail{client: client, session: sess, comments: comments, nav: nav, notify: notify}
}

// Load fetches the post and its comments concurrently. A post failure
// is fatal to the view; a comment failure degrades to an empty list,
// the comments are secondary.
func (d *Detail) Load(ctx context.Context, id int64) {
	d.mu.Lock()
	d.postID = id
	d.post = nil
	d.notFound = false
	d.errMsg = ""
	d.loading = true
	d.mu.Unlock()

	d.comments.SetPost(id)

	var (
		wg         sync.WaitGroup
		post       domain.Post
		postErr    error
		commentErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		postErr = d.client.Get(ctx, fmt.Sprintf("/api/posts/%d", id), &post)
	}()
	go func() {
		defer wg.Done()
		commentErr = d.comments.Refresh(ctx)
	}()
	wg.Wait()

	if commentErr != nil {
		pkglogger.GetLogger().Warn().Err(commentErr).Int64("post_id", id).Msg("comment load failed")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false

	if postErr != nil {
		if errors.Is(postErr, common.ErrNotFound) {
			d.notFound = true
		} else {
			d.errMsg = "게시글을 불러오는데 실패했습니다"
		}
		return
	}
	d.post = &post
}

// Post returns the loaded post, nil before Load or after a failure.
func (d *Detail) Post() *domain.Post {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.post
}

// NotFound reports whether the post no longer exists.
func (d *Detail) NotFound() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.notFound
}

// ErrorMessage returns the inline load error, "" when healthy.
func (d *Detail) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}

// Loading reports whether Load is in flight.
func (d *Detail) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// IsAuthor reports whether the current identity wrote the loaded post.
func (d *Detail) IsAuthor() bool {
	d.mu.Lock()
	post := d.post
	d.mu.Unlock()
	if post == nil {
		return false
	}
	return IsAuthor(d.session.Current(), post.AuthorNickname)
}

// DeletePost deletes the loaded post after explicit confirmation. On
// success the user lands back on the board list; on failure the view
// stays put and the server's message is surfaced.
func (d *Detail) DeletePost(ctx context.Context) {
	d.mu.Lock()
	id := d.postID
	d.mu.Unlock()

	if !d.notify.Confirm("정말 삭제하시겠습니까?") {
		return
	}

	if err := d.client.Delete(ctx, fmt.Sprintf("/api/posts/%d", id)); err != nil {
		d.notify.Notify(common.Message(err, "삭제에 실패했습니다"))
		return
	}

	d.notify.Notify("게시글이 삭제되었습니다")
	d.nav.ToBoard()
}
