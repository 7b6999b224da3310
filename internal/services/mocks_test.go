package services_test

import (
	"musicstore/internal/models"
	"musicstore/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// stubTxManager runs the callback against the test's repository bundle
// without any real transaction, so mock expectations can be asserted
// directly.
type stubTxManager struct {
	repos *repositories.Repositories
}

func (m *stubTxManager) Do(fn func(r *repositories.Repositories) error) error {
	return fn(m.repos)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockArtistRepository is a mock implementation of repositories.ArtistRepository
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) GetAll() ([]models.Artist, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetByID(id string) (*models.Artist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetByUserID(userID string) (*models.Artist, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) ExistsByUserID(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtistRepository) Create(artist *models.Artist) error {
	args := m.Called(artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Update(artist *models.Artist) error {
	args := m.Called(artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAlbumRepository is a mock implementation of repositories.AlbumRepository
type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) GetAll() ([]models.Album, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Album), args.Error(1)
}

func (m *MockAlbumRepository) GetByID(id string) (*models.Album, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumRepository) GetByArtistID(artistID string) ([]models.Album, error) {
	args := m.Called(artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Album), args.Error(1)
}

func (m *MockAlbumRepository) Create(album *models.Album) error {
	args := m.Called(album)
	return args.Error(0)
}

func (m *MockAlbumRepository) Update(album *models.Album) error {
	args := m.Called(album)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTrackRepository is a mock implementation of repositories.TrackRepository
type MockTrackRepository struct {
	mock.Mock
}

func (m *MockTrackRepository) GetByAlbumID(albumID string) ([]models.Track, error) {
	args := m.Called(albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Track), args.Error(1)
}

func (m *MockTrackRepository) GetByAlbumIDAndPosition(albumID string, position int) (*models.Track, error) {
	args := m.Called(albumID, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Track), args.Error(1)
}

func (m *MockTrackRepository) CountByAlbumID(albumID string) (int, error) {
	args := m.Called(albumID)
	return args.Int(0), args.Error(1)
}

func (m *MockTrackRepository) Create(track *models.Track) error {
	args := m.Called(track)
	return args.Error(0)
}

func (m *MockTrackRepository) Update(track *models.Track) error {
	args := m.Called(track)
	return args.Error(0)
}

func (m *MockTrackRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTrackRepository) DeleteByAlbumID(albumID string) error {
	args := m.Called(albumID)
	return args.Error(0)
}

// MockTagRepository is a mock implementation of repositories.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetAll() ([]models.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByID(id string) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByName(name string) (*models.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAlbumTagRepository is a mock implementation of repositories.AlbumTagRepository
type MockAlbumTagRepository struct {
	mock.Mock
}

func (m *MockAlbumTagRepository) GetByAlbumID(albumID string) ([]models.AlbumTag, error) {
	args := m.Called(albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AlbumTag), args.Error(1)
}

func (m *MockAlbumTagRepository) GetByAlbumAndTag(albumID, tagID string) (*models.AlbumTag, error) {
	args := m.Called(albumID, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AlbumTag), args.Error(1)
}

func (m *MockAlbumTagRepository) Create(albumTag *models.AlbumTag) error {
	args := m.Called(albumTag)
	return args.Error(0)
}

func (m *MockAlbumTagRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAlbumTagRepository) DeleteByTagID(tagID string) error {
	args := m.Called(tagID)
	return args.Error(0)
}

// MockReviewRepository is a mock implementation of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByAlbumID(albumID string) ([]models.Review, error) {
	args := m.Called(albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUserID(userID string) ([]models.Review, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPurchaseRepository is a mock implementation of repositories.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) GetByUserID(userID string) ([]models.Purchase, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) GetByUserAndAlbum(userID, albumID string) (*models.Purchase, error) {
	args := m.Called(userID, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Create(purchase *models.Purchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}

// MockSubscriptionRepository is a mock implementation of repositories.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) GetByUserID(userID string) ([]models.Subscription, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetByArtistID(artistID string) ([]models.Subscription, error) {
	args := m.Called(artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetByUserAndArtist(userID, artistID string) (*models.Subscription, error) {
	args := m.Called(userID, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ExistsByUserAndArtist(userID, artistID string) (bool, error) {
	args := m.Called(userID, artistID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(subscription *models.Subscription) error {
	args := m.Called(subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// repoMocks bundles every mock so tests can pick the ones they need and
// still hand a complete repository set to the service under test.
type repoMocks struct {
	users         *MockUserRepository
	artists       *MockArtistRepository
	albums        *MockAlbumRepository
	tracks        *MockTrackRepository
	tags          *MockTagRepository
	albumTags     *MockAlbumTagRepository
	reviews       *MockReviewRepository
	purchases     *MockPurchaseRepository
	subscriptions *MockSubscriptionRepository
}

func newRepoMocks() *repoMocks {
	return &repoMocks{
		users:         new(MockUserRepository),
		artists:       new(MockArtistRepository),
		albums:        new(MockAlbumRepository),
		tracks:        new(MockTrackRepository),
		tags:          new(MockTagRepository),
		albumTags:     new(MockAlbumTagRepository),
		reviews:       new(MockReviewRepository),
		purchases:     new(MockPurchaseRepository),
		subscriptions: new(MockSubscriptionRepository),
	}
}

func (m *repoMocks) bundle() *repositories.Repositories {
	return &repositories.Repositories{
		Users:         m.users,
		Artists:       m.artists,
		Albums:        m.albums,
		Tracks:        m.tracks,
		Tags:          m.tags,
		AlbumTags:     m.albumTags,
		Reviews:       m.reviews,
		Purchases:     m.purchases,
		Subscriptions: m.subscriptions,
	}
}

func (m *repoMocks) assertExpectations(t mock.TestingT) {
	m.users.AssertExpectations(t)
	m.artists.AssertExpectations(t)
	m.albums.AssertExpectations(t)
	m.tracks.AssertExpectations(t)
	m.tags.AssertExpectations(t)
	m.albumTags.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
	m.purchases.AssertExpectations(t)
	m.subscriptions.AssertExpectations(t)
}
