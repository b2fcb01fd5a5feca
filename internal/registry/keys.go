package registry

import (
	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/hub"
	"github.com/drivncook/backoffice/internal/prefstore"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/pubsub"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/session"
)

// Core service keys. Modules resolve their dependencies through these
// during Register/Boot.
var (
	APIClientKey      = Key[*api.Client]("core.apiClient")
	SessionKey        = Key[*session.Session]("core.session")
	PrefStoreKey      = Key[*prefstore.Store]("core.prefStore")
	ProfileManagerKey = Key[*profile.Manager]("core.profileManager")
	RendererKey       = Key[rendering.Renderer]("core.renderer")
	PublisherKey      = Key[pubsub.Publisher]("core.publisher")
	SubscriberKey     = Key[pubsub.Subscriber]("core.subscriber")
	HubKey            = Key[*hub.Hub]("core.hub")
)
