package service

import "blog-backend/internal/domain"

// An empty identity denotes an anonymous caller throughout this file.

func requireIdentity(identity string) error {
	if identity == "" {
		return newError(ErrUnauthorized, "No token")
	}
	return nil
}

func isOwner(identity string, post *domain.Post) bool {
	return identity != "" && identity == post.AuthorID
}

// canRead lets the author see any of their posts and everyone else only
// published ones.
func canRead(identity string, post *domain.Post) bool {
	return isOwner(identity, post) || post.State == domain.PostStatePublished
}

// countsAsRead reports whether reading post should bump its read count.
func countsAsRead(identity string, post *domain.Post) bool {
	return !isOwner(identity, post)
}

func authorizeModify(identity string, post *domain.Post, denied string) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}
	if !isOwner(identity, post) {
		return newError(ErrForbidden, denied)
	}
	return nil
}
