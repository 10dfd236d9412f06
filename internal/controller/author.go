package controller

// IsAuthor decides whether edit/delete affordances are shown for a
// resource. Pure UI predicate: the server remains the authority on
// permission, this never substitutes for a server-side check.
func IsAuthor(identity, author string) bool {
	return identity != "" && identity == author
}
