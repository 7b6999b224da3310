package authz_test

import (
	"testing"

	"musicstore/internal/apperrors"
	"musicstore/internal/authz"
	"musicstore/internal/models"
	"musicstore/internal/repositories"

	"github.com/stretchr/testify/assert"
)

// In-memory stubs backing the ownership lookups. Only the methods the
// policy touches return data; the rest satisfy the interfaces.

type stubArtistRepo struct {
	byID     map[string]*models.Artist
	byUserID map[string]*models.Artist
}

func (s *stubArtistRepo) GetAll() ([]models.Artist, error) { return nil, nil }
func (s *stubArtistRepo) GetByID(id string) (*models.Artist, error) {
	if artist, ok := s.byID[id]; ok {
		return artist, nil
	}
	return nil, apperrors.NotFound("artist_not_found", "artist not found")
}
func (s *stubArtistRepo) GetByUserID(userID string) (*models.Artist, error) {
	if artist, ok := s.byUserID[userID]; ok {
		return artist, nil
	}
	return nil, apperrors.NotFound("artist_not_found", "artist profile not found")
}
func (s *stubArtistRepo) ExistsByUserID(userID string) (bool, error) {
	_, ok := s.byUserID[userID]
	return ok, nil
}
func (s *stubArtistRepo) Create(artist *models.Artist) error { return nil }
func (s *stubArtistRepo) Update(artist *models.Artist) error { return nil }
func (s *stubArtistRepo) Delete(id string) error             { return nil }

type stubAlbumRepo struct {
	byID map[string]*models.Album
}

func (s *stubAlbumRepo) GetAll() ([]models.Album, error) { return nil, nil }
func (s *stubAlbumRepo) GetByID(id string) (*models.Album, error) {
	if album, ok := s.byID[id]; ok {
		return album, nil
	}
	return nil, apperrors.NotFound("album_not_found", "album not found")
}
func (s *stubAlbumRepo) GetByArtistID(artistID string) ([]models.Album, error) { return nil, nil }
func (s *stubAlbumRepo) Create(album *models.Album) error                      { return nil }
func (s *stubAlbumRepo) Update(album *models.Album) error                      { return nil }
func (s *stubAlbumRepo) Delete(id string) error                                { return nil }

func newTestPolicy() *authz.Policy {
	artist := &models.Artist{ID: "artist-1", UserID: "artist-user"}
	album := &models.Album{ID: "album-1", ArtistID: "artist-1"}
	return authz.NewPolicy(&repositories.Repositories{
		Artists: &stubArtistRepo{
			byID:     map[string]*models.Artist{"artist-1": artist},
			byUserID: map[string]*models.Artist{"artist-user": artist},
		},
		Albums: &stubAlbumRepo{
			byID: map[string]*models.Album{"album-1": album},
		},
	})
}

func identity(userID, role string) authz.Identity {
	return authz.Identity{UserID: userID, Username: userID, Role: role}
}

func TestIdentity_Resolved(t *testing.T) {
	assert.False(t, authz.Identity{}.Resolved())
	assert.False(t, authz.Identity{UserID: "u"}.Resolved())
	assert.False(t, authz.Identity{Username: "u"}.Resolved())
	assert.True(t, identity("u", models.RoleUser).Resolved())
}

func TestPolicy_IsSameUser(t *testing.T) {
	policy := newTestPolicy()

	assert.True(t, policy.IsSameUser(identity("user-1", models.RoleUser), "user-1"))
	assert.False(t, policy.IsSameUser(identity("user-1", models.RoleUser), "user-2"))
	// Admins pass for any user
	assert.True(t, policy.IsSameUser(identity("admin-1", models.RoleAdmin), "user-2"))
	// Zero identity and empty target are always denied
	assert.False(t, policy.IsSameUser(authz.Identity{}, "user-1"))
	assert.False(t, policy.IsSameUser(identity("user-1", models.RoleUser), ""))
}

func TestPolicy_IsAlbumOwner(t *testing.T) {
	policy := newTestPolicy()

	assert.True(t, policy.IsAlbumOwner(identity("artist-user", models.RoleArtist), "album-1"))
	assert.False(t, policy.IsAlbumOwner(identity("other-user", models.RoleArtist), "album-1"))
	assert.False(t, policy.IsAlbumOwner(identity("artist-user", models.RoleArtist), "missing-album"))
	assert.True(t, policy.IsAlbumOwner(identity("admin-1", models.RoleAdmin), "album-1"))
	assert.False(t, policy.IsAlbumOwner(authz.Identity{}, "album-1"))
}

func TestPolicy_IsArtistOwner(t *testing.T) {
	policy := newTestPolicy()

	assert.True(t, policy.IsArtistOwner(identity("artist-user", models.RoleArtist), "artist-1"))
	assert.False(t, policy.IsArtistOwner(identity("other-user", models.RoleArtist), "artist-1"))
	assert.False(t, policy.IsArtistOwner(identity("artist-user", models.RoleArtist), "missing-artist"))
	assert.True(t, policy.IsArtistOwner(identity("admin-1", models.RoleAdmin), "artist-1"))
	assert.False(t, policy.IsArtistOwner(authz.Identity{}, "artist-1"))
}

func TestPolicy_CanPurchaseAlbum(t *testing.T) {
	policy := newTestPolicy()

	assert.True(t, policy.CanPurchaseAlbum(identity("user-1", models.RoleUser)))
	assert.True(t, policy.CanPurchaseAlbum(identity("admin-1", models.RoleAdmin)))
	assert.False(t, policy.CanPurchaseAlbum(identity("artist-user", models.RoleArtist)))
	assert.False(t, policy.CanPurchaseAlbum(authz.Identity{}))
}

func TestPolicy_HasAnyRole(t *testing.T) {
	policy := newTestPolicy()

	caller := identity("user-1", models.RoleArtist)
	assert.True(t, policy.HasAnyRole(caller, models.RoleArtist, models.RoleAdmin))
	assert.False(t, policy.HasAnyRole(caller, models.RoleUser, models.RoleAdmin))
	assert.False(t, policy.HasAnyRole(authz.Identity{}, models.RoleUser, models.RoleArtist, models.RoleAdmin))
	assert.False(t, policy.HasAnyRole(caller))
}
