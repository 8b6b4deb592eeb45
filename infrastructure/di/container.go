package di

import (
	"go.uber.org/zap"

	"personality-backend/application/commands/bus"
	"personality-backend/application/ports"
	"personality-backend/application/reactor"
	"personality-backend/infrastructure/config"
	"personality-backend/interfaces/http/rest"
	"personality-backend/pkg/observability"
)

// Container holds all application dependencies. It is built once per
// process (Lambda cold start) and reused across invocations.
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Questions   ports.QuestionCatalog
	Profiles    ports.ProfileStore
	Submissions ports.SubmissionStore
	EventBus    ports.EventBus
	Metrics     *observability.Metrics
	CommandBus  *bus.CommandBus
	Reactor     *reactor.Reactor
	Router      *rest.Router
}
