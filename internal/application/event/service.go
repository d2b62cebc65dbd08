package event

import (
	"strings"
	"time"
)

type Service struct {
	repo  EventRepo
	dir   UserDirectory
	files FileStore
	cache Cache
	pub   EventPublisher
	clock Clock

	ttlDetails time.Duration
}

func New(
	repo EventRepo,
	dir UserDirectory,
	files FileStore,
	cache Cache,
	pub EventPublisher,
	clock Clock,
	ttlDetails time.Duration,
) *Service {
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{
		repo:       repo,
		dir:        dir,
		files:      files,
		cache:      cache,
		pub:        pub,
		clock:      clock,
		ttlDetails: ttlDetails,
	}
}

func isAdmin(role string) bool { return role == "admin" }

// Owner or admin may mutate an event.
func canManage(actorID, actorRole, ownerID string) bool {
	if isAdmin(actorRole) {
		return true
	}
	return strings.TrimSpace(actorID) != "" && actorID == ownerID
}
