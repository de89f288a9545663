package http

import (
	"github.com/hackforge-dev/admin-api/internal/infrastructure/discord"
	"github.com/hackforge-dev/admin-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/hackforge-dev/admin-api/internal/infrastructure/jwt"
	"github.com/hackforge-dev/admin-api/internal/infrastructure/webpush"
)

// Deps holds all infrastructure dependencies for the router.
// ChatNotifier and PushSender may be nil when their credentials are not
// configured; the broadcaster then skips that channel.
type Deps struct {
	AnnouncementRepo *dynamo.AnnouncementRepo
	SubscriptionRepo *dynamo.SubscriptionRepo
	UserRepo         *dynamo.UserRepo
	ChatNotifier     discord.Notifier
	PushSender       webpush.Sender
	JWTProvider      *jwtinfra.Provider
}
