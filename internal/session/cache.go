package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// cachedUser is the advisory nickname snapshot kept between runs, the
// way the original client kept it in browser storage. Display-only:
// startup always re-validates against the server.
type cachedUser struct {
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

type fileCache struct {
	path string
}

func newFileCache() *fileCache {
	dir, err := os.UserCacheDir()
	if err != nil {
		return &fileCache{}
	}
	return &fileCache{path: filepath.Join(dir, "hacsa", "session.json")}
}

func (c *fileCache) load() (cachedUser, bool) {
	var user cachedUser
	if c.path == "" {
		return user, false
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return user, false
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return cachedUser{}, false
	}
	return user, user.Nickname != ""
}

func (c *fileCache) store(user cachedUser) {
	if c.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = os.WriteFile(c.path, data, 0o600)
}

func (c *fileCache) clear() {
	if c.path == "" {
		return
	}
	_ = os.Remove(c.path)
}
