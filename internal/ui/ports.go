// Package ui declares the two seams between the controllers and whatever
// renders them. The terminal front end in cmd/hacsa implements both;
// tests substitute mocks.
package ui

// View identifies where the user currently is. The transport's
// auth-failure reaction needs it to avoid redirect loops on the
// login and signup screens.
type View int

const (
	ViewHome View = iota
	ViewBoard
	ViewPostDetail
	ViewWrite
	ViewLogin
	ViewSignup
)

// Navigator moves the user between views.
type Navigator interface {
	Current() View
	ToLogin()
	ToBoard()
	ToPost(id int64)
}

// Notifier surfaces blocking messages and destructive-action confirmations.
type Notifier interface {
	Notify(msg string)
	Confirm(msg string) bool
}
