package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"personality-backend/application/commands"
	"personality-backend/application/commands/bus"
	"personality-backend/application/commands/handlers"
	"personality-backend/application/ports"
	"personality-backend/application/reactor"
	"personality-backend/infrastructure/config"
	"personality-backend/infrastructure/messaging/eventbridge"
	"personality-backend/infrastructure/persistence/dynamodb"
	"personality-backend/interfaces/http/rest"
	resthandlers "personality-backend/interfaces/http/rest/handlers"
	"personality-backend/pkg/auth"
	"personality-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration shared by all clients
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.EnableTracing {
		observability.InstrumentAWSClients(&awsCfg)
	}

	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideQuestionCatalog creates the question catalog store
func ProvideQuestionCatalog(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.QuestionCatalog {
	return dynamodb.NewQuestionRepository(client, cfg.QuestionsTable, logger)
}

// ProvideProfileStore creates the user profile store
func ProvideProfileStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProfileStore {
	return dynamodb.NewProfileRepository(client, cfg.ProfilesTable, logger)
}

// ProvideSubmissionStore creates the submission store
func ProvideSubmissionStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.SubmissionStore {
	return dynamodb.NewSubmissionRepository(client, cfg.SubmissionsTable, logger)
}

// ProvideEventBus creates the scored-event publisher
func ProvideEventBus(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventBus {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the metrics instance. Without the metrics flag
// the CloudWatch client stays unset and every publish is a no-op.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	namespace := fmt.Sprintf("PersonalityBackend/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil)
	}
	return observability.NewMetrics(namespace, client)
}

// ProvideScoreSubmissionHandler creates the scoring handler
func ProvideScoreSubmissionHandler(
	profiles ports.ProfileStore,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *handlers.ScoreSubmissionHandler {
	return handlers.NewScoreSubmissionHandler(profiles, eventBus, logger)
}

// ProvideReactor creates the stream reactor
func ProvideReactor(
	catalog ports.QuestionCatalog,
	handler *handlers.ScoreSubmissionHandler,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *reactor.Reactor {
	return reactor.NewReactor(catalog, handler, metrics, logger)
}

// ProvideCommandBus creates the command bus with all handlers registered
func ProvideCommandBus(
	catalog ports.QuestionCatalog,
	submissions ports.SubmissionStore,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	b := bus.NewCommandBus()
	logging := bus.LoggingMiddleware(logger)

	submitHandler := handlers.NewSubmitAnswersHandler(submissions, logger)
	submitAdapter := bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.SubmitAnswersCommand)
		if !ok {
			return fmt.Errorf("unexpected command type %T", cmd)
		}
		return submitHandler.Handle(ctx, c)
	})
	if err := b.Register(commands.SubmitAnswersCommand{}, bus.Wrap(submitAdapter, logging)); err != nil {
		return nil, err
	}

	questionHandler := handlers.NewCreateQuestionHandler(catalog, logger)
	questionAdapter := bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		c, ok := cmd.(commands.CreateQuestionCommand)
		if !ok {
			return fmt.Errorf("unexpected command type %T", cmd)
		}
		return questionHandler.Handle(ctx, c)
	})
	if err := b.Register(commands.CreateQuestionCommand{}, bus.Wrap(questionAdapter, logging)); err != nil {
		return nil, err
	}

	return b, nil
}

// ProvideJWTValidator creates the JWT validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = "development-secret-change-in-production"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideRateLimiter creates the per-IP rate limiter
func ProvideRateLimiter() *auth.RateLimiter {
	return auth.NewRateLimiter(100)
}

// ProvideQuestionHandler creates the question REST handler
func ProvideQuestionHandler(commandBus *bus.CommandBus, catalog ports.QuestionCatalog, logger *zap.Logger) *resthandlers.QuestionHandler {
	return resthandlers.NewQuestionHandler(commandBus, catalog, logger)
}

// ProvideSubmissionHandler creates the submission REST handler
func ProvideSubmissionHandler(commandBus *bus.CommandBus, logger *zap.Logger) *resthandlers.SubmissionHandler {
	return resthandlers.NewSubmissionHandler(commandBus, logger)
}

// ProvideProfileHandler creates the profile REST handler
func ProvideProfileHandler(profiles ports.ProfileStore, logger *zap.Logger) *resthandlers.ProfileHandler {
	return resthandlers.NewProfileHandler(profiles, logger)
}

// ProvideRouter creates the REST router
func ProvideRouter(
	questions *resthandlers.QuestionHandler,
	submissions *resthandlers.SubmissionHandler,
	profiles *resthandlers.ProfileHandler,
	validator *auth.JWTValidator,
	limiter *auth.RateLimiter,
	cfg *config.Config,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(questions, submissions, profiles, validator, limiter, cfg, logger)
}
