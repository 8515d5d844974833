package app

import (
	"context"

	authAPI "slots_backend/internal/api/auth"
	slotAPI "slots_backend/internal/api/slot"
	"slots_backend/internal/config"
	"slots_backend/internal/config/env"
	"slots_backend/internal/jobs"
	"slots_backend/internal/middleware"
	"slots_backend/internal/repository"
	"slots_backend/internal/repository/auth_repo"
	"slots_backend/internal/repository/bonus_repo"
	"slots_backend/internal/repository/leaderboard_cache"
	"slots_backend/internal/repository/ledger_repo"
	"slots_backend/internal/repository/user_repo"
	"slots_backend/internal/service"
	"slots_backend/internal/service/auth"
	"slots_backend/internal/service/slot"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Repositories
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	bonusRepo  repository.BonusRepository
	authRepo   repository.AuthRepository
	lbCache    repository.LeaderboardCache

	// Slot bits
	slotCfg  config.SlotConfig
	slotServ service.SlotService
	slotHand *slotAPI.Handler

	// Auth bits
	jwtCfg   config.JWTConfig
	authServ service.AuthService
	authHand *authAPI.Handler

	// Background jobs
	scheduler *jobs.Scheduler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		client := redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Addr(),
			Password: sp.RedisConfig().Password(),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = client
	}
	return sp.redisClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) LedgerRepo(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) BonusRepo(ctx context.Context) repository.BonusRepository {
	if sp.bonusRepo == nil {
		sp.bonusRepo = bonus_repo.NewBonusRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.bonusRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) LeaderboardCache(ctx context.Context) repository.LeaderboardCache {
	if sp.lbCache == nil {
		sp.lbCache = leaderboard_cache.NewLeaderboardCache(sp.RedisClient(ctx))
	}
	return sp.lbCache
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(
			sp.SlotCfg(),
			sp.UserRepo(ctx),
			sp.LedgerRepo(ctx),
			sp.BonusRepo(ctx),
			sp.LeaderboardCache(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(ctx),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.SlotCfg().InitialBalance(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) Scheduler(ctx context.Context) *jobs.Scheduler {
	if sp.scheduler == nil {
		sp.scheduler = jobs.NewScheduler(sp.SlotService(ctx))
	}
	return sp.scheduler
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Slot endpoints, bearer token required
		slotHandler := sp.SlotHandler(ctx)
		r.Route("/slot", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
			rr.Post("/spin", slotHandler.Spin)
			rr.Post("/bonus", slotHandler.Bonus)
			rr.Post("/deposit", slotHandler.Deposit)
			rr.Get("/check-data", slotHandler.CheckData)
			rr.Get("/history", slotHandler.History)
			rr.Get("/leaderboard", slotHandler.Leaderboard)
		})

		sp.router = r
	}

	return sp.router
}
