package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hacsa-board/hacsa-cli/internal/controller"
	"github.com/hacsa-board/hacsa-cli/pkg/timefmt"
)

func (a *app) renderHeader() {
	name := "로그인 안 됨"
	if a.sess.Ready() && a.sess.LoggedIn() {
		name = a.sess.Current() + "님"
	}
	fmt.Println(titleStyle.Render("학사") + "  " + mutedStyle.Render(name))
}

func (a *app) renderHome() {
	a.renderHeader()
	fmt.Println("학교 사랑 소통장소, 학사에 오신 것을 환영합니다!")
	fmt.Println(mutedStyle.Render("board 를 입력하면 게시판으로 이동합니다. help 로 명령을 봅니다."))
}

func (a *app) renderBoard() {
	a.renderHeader()
	if a.board.Mode() == controller.ModeSearching {
		fmt.Println(headerStyle.Render("게시판 — 검색: " + a.board.Keyword()))
	} else {
		fmt.Println(headerStyle.Render("게시판"))
	}

	if msg := a.board.ErrorMessage(); msg != "" {
		fmt.Println(errorStyle.Render(msg))
	}

	page := a.board.Page()
	if len(page.Items) == 0 {
		fmt.Println(mutedStyle.Render("게시글이 없습니다"))
		return
	}

	now := time.Now()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%6s  %-40s %-12s %-12s %6s",
		"번호", "제목", "작성자", "작성일", "조회")))
	for _, p := range page.Items {
		title := p.Title
		if p.CommentCount > 0 {
			title = fmt.Sprintf("%s [%d]", title, p.CommentCount)
		}
		fmt.Printf("%6d  %-40s %-12s %-12s %6d\n",
			p.ID, truncate(title, 40), p.AuthorNickname,
			timefmt.Relative(p.CreatedAt.Time, now), p.ViewCount)
	}

	if page.TotalPages > 1 {
		var controls []string
		if a.board.CanPrev() {
			controls = append(controls, "prev")
		}
		controls = append(controls, fmt.Sprintf("%d / %d", page.PageIndex+1, page.TotalPages))
		if a.board.CanNext() {
			controls = append(controls, "next")
		}
		fmt.Println(mutedStyle.Render(strings.Join(controls, "  ")))
	}
}

func (a *app) renderDetail() {
	a.renderHeader()

	if a.detail.NotFound() {
		fmt.Println(errorStyle.Render("게시글을 찾을 수 없습니다"))
		return
	}
	if msg := a.detail.ErrorMessage(); msg != "" {
		fmt.Println(errorStyle.Render(msg))
		return
	}
	post := a.detail.Post()
	if post == nil {
		fmt.Println(mutedStyle.Render("로딩 중..."))
		return
	}

	fmt.Println(titleStyle.Render(post.Title))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%s  %s  조회 %d",
		post.AuthorNickname, timefmt.Absolute(post.CreatedAt.Time), post.ViewCount)))
	fmt.Println()
	fmt.Println(post.Content)
	fmt.Println()

	if a.detail.IsAuthor() {
		fmt.Println(mutedStyle.Render("명령: edit / delete / back"))
	} else {
		fmt.Println(mutedStyle.Render("명령: back"))
	}

	comments := a.comments.Items()
	fmt.Println(headerStyle.Render(fmt.Sprintf("댓글 %d개", len(comments))))
	if len(comments) == 0 {
		fmt.Println(mutedStyle.Render("첫 댓글을 작성해보세요!"))
		return
	}
	for _, cm := range comments {
		fmt.Printf("  [%d] %s  %s\n", cm.ID,
			noticeStyle.Render(cm.AuthorNickname),
			mutedStyle.Render(timefmt.Absolute(cm.CreatedAt.Time)))
		fmt.Println("      " + cm.Content)
		if a.comments.IsAuthor(cm) {
			fmt.Println(mutedStyle.Render(fmt.Sprintf("      cedit %d / cdel %d", cm.ID, cm.ID)))
		}
	}
}

func (a *app) renderHelp() {
	fmt.Println(headerStyle.Render("명령"))
	for _, line := range []string{
		"board            게시판으로 이동",
		"open <번호>      게시글 열기",
		"next / prev      페이지 이동",
		"search <검색어>  제목 검색 (빈 검색어는 전체 목록)",
		"write            새 게시글 작성",
		"edit             현재 게시글 수정 (작성자만)",
		"delete           현재 게시글 삭제 (작성자만)",
		"comment <내용>   댓글 작성",
		"cedit <번호>     댓글 수정",
		"cdel <번호>      댓글 삭제",
		"login / logout / signup",
		"me               현재 로그인 정보",
		"quit             종료",
	} {
		fmt.Println("  " + line)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
