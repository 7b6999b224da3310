package repositories

// Repositories bundles every repository bound to one storage handle.
// A bundle handed to a TxManager.Do callback shares a single transaction.
type Repositories struct {
	Users         UserRepository
	Artists       ArtistRepository
	Albums        AlbumRepository
	Tracks        TrackRepository
	Tags          TagRepository
	AlbumTags     AlbumTagRepository
	Reviews       ReviewRepository
	Purchases     PurchaseRepository
	Subscriptions SubscriptionRepository
}

// TxManager runs a function against a repository bundle inside one atomic
// unit of work. If fn returns an error every write made through the bundle
// is rolled back.
type TxManager interface {
	Do(fn func(r *Repositories) error) error
}
