package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hacsa-board/hacsa-cli/internal/domain"
	"github.com/hacsa-board/hacsa-cli/internal/session"
	"github.com/hacsa-board/hacsa-cli/internal/transport"
	"github.com/hacsa-board/hacsa-cli/internal/ui"
)

// --- Mock presentation ports ---

type mockNavigator struct {
	mock.Mock
}

func (m *mockNavigator) Current() ui.View {
	return m.Called().Get(0).(ui.View)
}

func (m *mockNavigator) ToLogin() { m.Called() }
func (m *mockNavigator) ToBoard() { m.Called() }
func (m *mockNavigator) ToPost(id int64) {
	m.Called(id)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(msg string) { m.Called(msg) }
func (m *mockNotifier) Confirm(msg string) bool {
	return m.Called(msg).Bool(0)
}

// --- Fake board server fixture ---

type fixture struct {
	mux    *http.ServeMux
	srv    *httptest.Server
	client *transport.Client
	sess   *session.Manager
	nav    *mockNavigator
	notify *mockNotifier
}

// newFixture spins up an in-process board server and a session resolved
// to the given identity ("" means logged out).
func newFixture(t *testing.T, identity string) *fixture {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	f := &fixture{
		mux:    http.NewServeMux(),
		nav:    new(mockNavigator),
		notify: new(mockNotifier),
	}
	if identity != "" {
		f.mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"username":"user","nickname":%q}`, identity)
		})
	}

	f.srv = httptest.NewServer(f.mux)
	t.Cleanup(f.srv.Close)

	client, err := transport.New(transport.Config{BaseURL: f.srv.URL})
	require.NoError(t, err)
	f.client = client

	f.sess = session.NewManager(client)
	f.sess.ResolveCurrentIdentity(context.Background())
	return f
}

func (f *fixture) servePost(p domain.Post) {
	f.mux.HandleFunc(fmt.Sprintf("GET /api/posts/%d", p.ID), func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, p)
	})
}

func (f *fixture) serveComments(postID int64, comments *[]domain.Comment) {
	f.mux.HandleFunc(fmt.Sprintf("GET /api/comments/post/%d", postID), func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, *comments)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writePostPage(w http.ResponseWriter, totalPages int, titles ...string) {
	posts := make([]domain.Post, len(titles))
	for i, title := range titles {
		posts[i] = domain.Post{ID: int64(i + 1), Title: title, AuthorNickname: "글쓴이"}
	}
	writeJSON(w, domain.PostListResponse{Content: posts, TotalPages: totalPages})
}

func TestIsAuthor(t *testing.T) {
	tests := []struct {
		identity string
		author   string
		want     bool
	}{
		{"alice", "alice", true},
		{"alice", "bob", false},
		{"", "bob", false},
		{"", "", false}, // logged out never owns anything
	}
	for _, tt := range tests {
		if got := IsAuthor(tt.identity, tt.author); got != tt.want {
			t.Errorf("IsAuthor(%q, %q) = %v, want %v", tt.identity, tt.author, got, tt.want)
		}
	}
}
