package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hacsa-board/hacsa-cli/internal/common"
	"github.com/hacsa-board/hacsa-cli/internal/config"
	"github.com/hacsa-board/hacsa-cli/internal/controller"
	"github.com/hacsa-board/hacsa-cli/internal/domain"
	"github.com/hacsa-board/hacsa-cli/internal/session"
	"github.com/hacsa-board/hacsa-cli/internal/ui"
)

type app struct {
	cfg       *config.Config
	term      *terminal
	sess      *session.Manager
	board     *controller.Board
	comments  *controller.Comments
	detail    *controller.Detail
	authoring *controller.Authoring
}

// handleNavigate reacts to controller-driven navigation: entering a
// view re-fetches its data from the server.
func (a *app) handleNavigate(view ui.View, postID int64) {
	ctx := context.Background()
	switch view {
	case ui.ViewBoard:
		a.board.LoadPage(ctx, a.board.Page().PageIndex)
	case ui.ViewPostDetail:
		a.detail.Load(ctx, postID)
	}
}

func (a *app) run(ctx context.Context) {
	a.render()
	for {
		line := a.term.readLine(">")
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
			continue
		case "quit", "exit", "q":
			return
		case "help", "h":
			a.renderHelp()
			continue
		case "me":
			if a.sess.LoggedIn() {
				fmt.Println(noticeStyle.Render(a.sess.Current() + "님"))
			} else {
				fmt.Println(mutedStyle.Render("로그인 안 됨"))
			}
			continue
		case "board", "b", "back":
			a.term.view = ui.ViewBoard
			a.board.LoadPage(ctx, a.board.Page().PageIndex)
		case "open", "o":
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println(errorStyle.Render("게시글 번호를 입력하세요"))
				continue
			}
			a.term.view = ui.ViewPostDetail
			a.detail.Load(ctx, id)
		case "next":
			a.board.NextPage(ctx)
		case "prev":
			a.board.PrevPage(ctx)
		case "search", "s":
			a.term.view = ui.ViewBoard
			a.board.Search(ctx, arg)
		case "write", "w":
			a.writeFlow(ctx, 0)
		case "edit":
			post := a.detail.Post()
			if post == nil {
				fmt.Println(errorStyle.Render("먼저 게시글을 여세요"))
				continue
			}
			a.writeFlow(ctx, post.ID)
		case "delete":
			if a.detail.Post() == nil {
				fmt.Println(errorStyle.Render("먼저 게시글을 여세요"))
				continue
			}
			a.detail.DeletePost(ctx)
		case "comment", "c":
			a.commentFlow(ctx, arg)
		case "cedit":
			if a.detail.Post() == nil {
				fmt.Println(errorStyle.Render("먼저 게시글을 여세요"))
				continue
			}
			a.commentEditFlow(ctx, arg)
		case "cdel":
			if a.detail.Post() == nil {
				fmt.Println(errorStyle.Render("먼저 게시글을 여세요"))
				continue
			}
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println(errorStyle.Render("댓글 번호를 입력하세요"))
				continue
			}
			a.comments.Delete(ctx, id)
		case "login":
			a.loginFlow(ctx)
		case "logout":
			a.sess.Logout(ctx)
			fmt.Println(noticeStyle.Render("로그아웃되었습니다"))
		case "signup":
			a.signupFlow(ctx)
		default:
			fmt.Println(errorStyle.Render("알 수 없는 명령: " + cmd))
			continue
		}
		a.render()
	}
}

func (a *app) render() {
	fmt.Println()
	switch a.term.view {
	case ui.ViewBoard:
		a.renderBoard()
	case ui.ViewPostDetail:
		a.renderDetail()
	default:
		a.renderHome()
	}
}

func (a *app) loginFlow(ctx context.Context) {
	a.term.view = ui.ViewLogin
	username := a.term.readLine("아이디:")
	password := a.term.readLine("비밀번호:")

	nickname, err := a.sess.Login(ctx, username, password)
	if err != nil {
		fmt.Println(errorStyle.Render(common.Message(err, "로그인에 실패했습니다")))
		return
	}
	fmt.Println(noticeStyle.Render(nickname + "님, 환영합니다!"))
	a.term.view = ui.ViewHome
}

func (a *app) signupFlow(ctx context.Context) {
	a.term.view = ui.ViewSignup
	req := domain.SignupRequest{
		Username:        a.term.readLine("아이디:"),
		Password:        a.term.readLine("비밀번호:"),
		PasswordConfirm: a.term.readLine("비밀번호 확인:"),
		Nickname:        a.term.readLine("닉네임:"),
		Email:           a.term.readLine("이메일:"),
		University:      a.term.readLine("대학교:"),
	}

	if err := a.sess.Signup(ctx, req); err != nil {
		if errors.Is(err, session.ErrPasswordMismatch) {
			fmt.Println(errorStyle.Render("비밀번호가 일치하지 않습니다"))
			return
		}
		fmt.Println(errorStyle.Render(common.Message(err, "회원가입에 실패했습니다")))
		return
	}
	fmt.Println(noticeStyle.Render("회원가입이 완료되었습니다!"))
	a.term.view = ui.ViewLogin
	a.loginFlow(ctx)
}

// writeFlow runs the authoring form. postID 0 creates, nonzero edits.
func (a *app) writeFlow(ctx context.Context, postID int64) {
	a.term.view = ui.ViewWrite
	if !a.authoring.Start(ctx, postID) {
		return
	}
	if msg := a.authoring.ErrorMessage(); msg != "" {
		fmt.Println(errorStyle.Render(msg))
		return
	}

	if a.authoring.IsEdit() {
		fmt.Println(headerStyle.Render("게시글 수정"))
		fmt.Println(mutedStyle.Render("현재 제목: " + a.authoring.Title()))
	} else {
		fmt.Println(headerStyle.Render("게시글 작성"))
	}

	title := a.term.readLine("제목:")
	if title == "" && a.authoring.IsEdit() {
		title = a.authoring.Title()
	}
	content := a.term.readMultiline("내용:")
	if content == "" && a.authoring.IsEdit() {
		content = a.authoring.Content()
	}

	a.authoring.Submit(ctx, title, content)
	if msg := a.authoring.ErrorMessage(); msg != "" {
		fmt.Println(errorStyle.Render(msg))
	}
}

func (a *app) commentFlow(ctx context.Context, content string) {
	if a.detail.Post() == nil {
		fmt.Println(errorStyle.Render("먼저 게시글을 여세요"))
		return
	}
	if content == "" {
		content = a.term.readMultiline("댓글:")
	}
	if strings.TrimSpace(content) == "" {
		return
	}
	a.comments.Create(ctx, content)
}

func (a *app) commentEditFlow(ctx context.Context, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println(errorStyle.Render("댓글 번호를 입력하세요"))
		return
	}

	a.comments.BeginEdit(id)
	if a.comments.EditingID() != id {
		fmt.Println(errorStyle.Render("해당 댓글이 없습니다"))
		return
	}

	fmt.Println(mutedStyle.Render("현재 내용: " + a.comments.EditDraft()))
	draft := a.term.readMultiline("수정할 내용:")
	if strings.TrimSpace(draft) == "" {
		a.comments.CancelEdit()
		return
	}
	a.comments.SetEditDraft(draft)
	a.comments.UpdateEdit(ctx)
}
