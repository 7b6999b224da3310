// Package authz implements the typed authorization predicates evaluated by
// the handlers before each mutating service call. The caller's identity is
// resolved once by the JWT middleware and passed around explicitly; a zero
// identity is always denied.
package authz

import (
	"musicstore/internal/models"
	"musicstore/internal/repositories"
)

// Identity is the resolved, already-authenticated caller.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

// Resolved reports whether the identity was actually resolved from a token.
func (i Identity) Resolved() bool {
	return i.UserID != "" && i.Username != ""
}

// HasRole reports whether the identity holds the given role.
func (i Identity) HasRole(role string) bool {
	return i.Resolved() && i.Role == role
}

// Policy evaluates ownership and role predicates against stored records.
type Policy struct {
	repos *repositories.Repositories
}

// NewPolicy creates a new Policy over the given repository bundle.
func NewPolicy(repos *repositories.Repositories) *Policy {
	return &Policy{
		repos: repos,
	}
}

// IsSameUser reports whether the caller is the user with the given ID.
// Admins pass unconditionally.
func (p *Policy) IsSameUser(identity Identity, userID string) bool {
	if !identity.Resolved() || userID == "" {
		return false
	}
	if identity.HasRole(models.RoleAdmin) {
		return true
	}
	return identity.UserID == userID
}

// IsAlbumOwner reports whether the caller's artist profile owns the album.
// Admins pass unconditionally.
func (p *Policy) IsAlbumOwner(identity Identity, albumID string) bool {
	if !identity.Resolved() || albumID == "" {
		return false
	}
	if identity.HasRole(models.RoleAdmin) {
		return true
	}
	artist, err := p.repos.Artists.GetByUserID(identity.UserID)
	if err != nil {
		return false
	}
	album, err := p.repos.Albums.GetByID(albumID)
	if err != nil {
		return false
	}
	return album.ArtistID == artist.ID
}

// IsArtistOwner reports whether the caller owns the artist profile with the
// given ID. Admins pass unconditionally.
func (p *Policy) IsArtistOwner(identity Identity, artistID string) bool {
	if !identity.Resolved() || artistID == "" {
		return false
	}
	if identity.HasRole(models.RoleAdmin) {
		return true
	}
	artist, err := p.repos.Artists.GetByID(artistID)
	if err != nil {
		return false
	}
	return artist.UserID == identity.UserID
}

// CanPurchaseAlbum reports whether the caller may buy albums.
func (p *Policy) CanPurchaseAlbum(identity Identity) bool {
	return identity.HasRole(models.RoleUser) || identity.HasRole(models.RoleAdmin)
}

// CanWriteReview reports whether the caller may leave reviews.
func (p *Policy) CanWriteReview(identity Identity) bool {
	return identity.HasRole(models.RoleUser) || identity.HasRole(models.RoleAdmin)
}

// HasAnyRole reports whether the caller holds at least one of the roles.
func (p *Policy) HasAnyRole(identity Identity, roles ...string) bool {
	for _, role := range roles {
		if identity.HasRole(role) {
			return true
		}
	}
	return false
}
