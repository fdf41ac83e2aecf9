package router

import (
	app "github.com/adityawp/campusmarket/internal/application"
	"github.com/adityawp/campusmarket/internal/container"
	pginfra "github.com/adityawp/campusmarket/internal/infrastructure/postgres"
	handlers "github.com/adityawp/campusmarket/internal/interface/http"
	"github.com/adityawp/campusmarket/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	listings := pginfra.NewListingRepository(pool)
	trades := pginfra.NewTradeRepository(pool)
	community := pginfra.NewCommunityRepository(pool)
	codes := pginfra.NewVerificationCodeRepository(pool)

	userSvc := app.NewUserService(users, container.GetJWT(), container.GetGCS(), cfg.GCSBucket, container.GetRedis(), logger)
	listingSvc := app.NewListingService(listings, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESListingsIndex, logger)
	tradeSvc := app.NewTradeService(trades, listings, users, community, logger)
	communitySvc := app.NewCommunityService(community, listings, logger)
	recoverySvc := app.NewRecoveryService(users, codes, logger, container.GetRabbitPub(), cfg.RecoveryCodeTTL)
	moderationSvc := app.NewModerationService(users, listings, community, logger, container.GetRabbitPub(), container.GetES(), cfg.ESListingsIndex)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure), container.GetJWT()))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(recoverySvc, logger)))
	r.Add(modules.NewListingModule(handlers.NewListingHandler(listingSvc, logger), container.GetJWT()))
	r.Add(modules.NewTradeModule(handlers.NewTradeHandler(tradeSvc, logger), container.GetJWT()))
	r.Add(modules.NewCommunityModule(handlers.NewCommunityHandler(communitySvc, logger), container.GetJWT()))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(moderationSvc, logger), container.GetJWT()))

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
