package services_test

import (
	"testing"

	"musicstore/internal/apperrors"
	"musicstore/internal/authz"
	"musicstore/internal/models"
	"musicstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newArtistService(m *repoMocks) *services.ArtistService {
	repos := m.bundle()
	tx := &stubTxManager{repos: repos}
	authService := services.NewAuthService(m.users, "test-secret")
	albumService := services.NewAlbumService(repos, tx, nil)
	return services.NewArtistService(repos, tx, authService, albumService, nil)
}

func TestArtistService_CreateArtist_PromotesUserAndIssuesToken(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	user := &models.User{ID: "user-1", Username: "newartist", Email: "a@example.com", Role: models.RoleUser}

	m.users.On("GetByUsername", "newartist").Return(user, nil).Once()
	m.artists.On("ExistsByUserID", "user-1").Return(false, nil).Once()
	m.artists.On("Create", mock.MatchedBy(func(a *models.Artist) bool {
		return a.UserID == "user-1" && a.Name == "Stage Name"
	})).Return(nil).Once()
	m.users.On("Update", user).Return(nil).Once()

	identity := authz.Identity{UserID: "user-1", Username: "newartist", Role: models.RoleUser}
	created, err := service.CreateArtist(identity, services.ArtistUpdate{Name: "Stage Name", Bio: "bio"})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, models.RoleArtist, user.Role)
	assert.Equal(t, models.RoleArtist, created.Role)
	assert.Equal(t, "newartist", created.Username)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "Stage Name", created.Artist.Name)

	claims, err := services.NewAuthService(m.users, "test-secret").ValidateToken(created.Token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleArtist, claims["role"])
	m.assertExpectations(t)
}

func TestArtistService_CreateArtist_SecondProfileIsConflict(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	user := &models.User{ID: "user-1", Username: "newartist", Role: models.RoleArtist}

	m.users.On("GetByUsername", "newartist").Return(user, nil).Once()
	m.artists.On("ExistsByUserID", "user-1").Return(true, nil).Once()

	identity := authz.Identity{UserID: "user-1", Username: "newartist", Role: models.RoleArtist}
	created, err := service.CreateArtist(identity, services.ArtistUpdate{Name: "Another"})

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, "artist_profile_exists", apperrors.CodeOf(err))
	m.artists.AssertNotCalled(t, "Create", mock.Anything)
	m.users.AssertNotCalled(t, "Update", mock.Anything)
	m.assertExpectations(t)
}

func TestArtistService_Subscribe_Success(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	user := &models.User{ID: "user-1", Username: "listener"}
	artist := &models.Artist{ID: "artist-1", UserID: "user-2", Name: "Band"}

	m.users.On("GetByUsername", "listener").Return(user, nil).Once()
	m.artists.On("GetByID", "artist-1").Return(artist, nil).Once()
	m.subscriptions.On("ExistsByUserAndArtist", "user-1", "artist-1").Return(false, nil).Once()
	m.subscriptions.On("Create", mock.MatchedBy(func(sub *models.Subscription) bool {
		return sub.UserID == "user-1" && sub.ArtistID == "artist-1"
	})).Return(nil).Once()

	identity := authz.Identity{UserID: "user-1", Username: "listener", Role: models.RoleUser}
	subscription, err := service.Subscribe(identity, "artist-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", subscription.UserID)
	assert.Equal(t, "artist-1", subscription.ArtistID)
	m.assertExpectations(t)
}

func TestArtistService_Subscribe_DuplicateIsConflict(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	user := &models.User{ID: "user-1", Username: "listener"}
	artist := &models.Artist{ID: "artist-1", UserID: "user-2"}

	m.users.On("GetByUsername", "listener").Return(user, nil).Once()
	m.artists.On("GetByID", "artist-1").Return(artist, nil).Once()
	m.subscriptions.On("ExistsByUserAndArtist", "user-1", "artist-1").Return(true, nil).Once()

	identity := authz.Identity{UserID: "user-1", Username: "listener", Role: models.RoleUser}
	subscription, err := service.Subscribe(identity, "artist-1")

	assert.Error(t, err)
	assert.Nil(t, subscription)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, "subscription_exists", apperrors.CodeOf(err))
	m.subscriptions.AssertNotCalled(t, "Create", mock.Anything)
	m.assertExpectations(t)
}

func TestArtistService_Subscribe_SelfSubscribeRejected(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	user := &models.User{ID: "user-1", Username: "performer"}
	artist := &models.Artist{ID: "artist-1", UserID: "user-1"}

	m.users.On("GetByUsername", "performer").Return(user, nil).Once()
	m.artists.On("GetByID", "artist-1").Return(artist, nil).Once()

	identity := authz.Identity{UserID: "user-1", Username: "performer", Role: models.RoleArtist}
	subscription, err := service.Subscribe(identity, "artist-1")

	assert.Error(t, err)
	assert.Nil(t, subscription)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
	assert.Equal(t, "self_subscribe", apperrors.CodeOf(err))
	m.subscriptions.AssertNotCalled(t, "ExistsByUserAndArtist", mock.Anything, mock.Anything)
	m.subscriptions.AssertNotCalled(t, "Create", mock.Anything)
	m.assertExpectations(t)
}

func TestArtistService_Unsubscribe_DeletesSubscription(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	user := &models.User{ID: "user-1", Username: "listener"}
	artist := &models.Artist{ID: "artist-1", UserID: "user-2"}
	subscription := &models.Subscription{ID: "sub-1", UserID: "user-1", ArtistID: "artist-1"}

	m.users.On("GetByUsername", "listener").Return(user, nil).Once()
	m.artists.On("GetByID", "artist-1").Return(artist, nil).Once()
	m.subscriptions.On("GetByUserAndArtist", "user-1", "artist-1").Return(subscription, nil).Once()
	m.subscriptions.On("Delete", "sub-1").Return(nil).Once()

	identity := authz.Identity{UserID: "user-1", Username: "listener", Role: models.RoleUser}
	err := service.Unsubscribe(identity, "artist-1")

	assert.NoError(t, err)
	m.assertExpectations(t)
}

func TestArtistService_Unsubscribe_NotSubscribed(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	user := &models.User{ID: "user-1", Username: "listener"}
	artist := &models.Artist{ID: "artist-1", UserID: "user-2"}

	m.users.On("GetByUsername", "listener").Return(user, nil).Once()
	m.artists.On("GetByID", "artist-1").Return(artist, nil).Once()
	m.subscriptions.On("GetByUserAndArtist", "user-1", "artist-1").
		Return(nil, apperrors.NotFound("subscription_not_found", "subscription not found")).Once()

	identity := authz.Identity{UserID: "user-1", Username: "listener", Role: models.RoleUser}
	err := service.Unsubscribe(identity, "artist-1")

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	m.subscriptions.AssertNotCalled(t, "Delete", mock.Anything)
	m.assertExpectations(t)
}

func TestArtistService_UpdateArtist(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	artist := &models.Artist{ID: "artist-1", UserID: "user-1", Name: "Old Name"}

	m.artists.On("GetByID", "artist-1").Return(artist, nil).Once()
	m.artists.On("Update", artist).Return(nil).Once()

	updated, err := service.UpdateArtist("artist-1", services.ArtistUpdate{Name: "New Name", Bio: "new bio"})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new bio", updated.Bio)
	m.assertExpectations(t)
}

func TestArtistService_GetArtistSubscribers(t *testing.T) {
	m := newRepoMocks()
	service := newArtistService(m)

	artist := &models.Artist{ID: "artist-1", UserID: "user-2"}
	subs := []models.Subscription{
		{ID: "sub-1", UserID: "user-1", ArtistID: "artist-1"},
		{ID: "sub-2", UserID: "user-3", ArtistID: "artist-1"},
	}

	m.artists.On("GetByID", "artist-1").Return(artist, nil).Once()
	m.subscriptions.On("GetByArtistID", "artist-1").Return(subs, nil).Once()

	result, err := service.GetArtistSubscribers("artist-1")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	m.assertExpectations(t)
}
