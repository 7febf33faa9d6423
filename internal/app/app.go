// Package app wires repositories, use cases and HTTP handlers into one server.
package app

import (
	"context"
	"log/slog"

	httpadp "peerlend-backend/internal/adapter/http"
	mw "peerlend-backend/internal/adapter/middleware"
	"peerlend-backend/internal/adapter/repository/mysql"
	"peerlend-backend/internal/config"
	"peerlend-backend/internal/infrastructure/cache"
	ucActivity "peerlend-backend/internal/usecase/activity"
	ucBusiness "peerlend-backend/internal/usecase/business"
	"peerlend-backend/internal/usecase/funding"
	ucLoan "peerlend-backend/internal/usecase/loan"
	ucOpportunity "peerlend-backend/internal/usecase/opportunity"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
	Log    *slog.Logger
}

func NewServer(d Deps) *echo.Echo {
	cfg, log := d.Config, d.Log
	if log == nil {
		log = slog.Default()
	}

	opps := mysql.NewOpportunityRepository(d.DB)
	loans := mysql.NewLoanRepository(d.DB)
	acts := mysql.NewActivityRepository(d.DB)
	businesses := mysql.NewBusinessRepository(d.DB)
	feed := cache.NewFeedCache(d.Redis, cfg.FeedCacheTTL())

	fundingUC := funding.NewUsecase(
		mysql.NewGormUoW(d.DB),
		funding.Limits{Min: cfg.MinContribution, Max: cfg.MaxContribution},
		feed,
		log,
	)
	loanUC := ucLoan.NewUsecase(loans, opps)
	oppUC := ucOpportunity.NewUsecase(opps, businesses)
	bizUC := ucBusiness.NewUsecase(businesses)
	actUC := ucActivity.NewUsecase(acts, feed, log)

	h := httpadp.Handlers{
		Health: httpadp.NewHandler(
			httpadp.HealthCheck{Name: "mysql", Check: func(ctx context.Context) error {
				sqlDB, err := d.DB.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			}},
			httpadp.HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
				return d.Redis.Ping(ctx).Err()
			}},
		),
		Opportunities: httpadp.NewOpportunityHandler(oppUC, loanUC, log),
		Loans:         httpadp.NewLoanHandler(fundingUC, loanUC, log),
		Businesses:    httpadp.NewBusinessHandler(bizUC, oppUC, log),
		Activities:    httpadp.NewActivityHandler(actUC, log),
	}

	e := httpadp.NewEcho(log)
	tokens := mw.NewTokenManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSecret)
	h.Register(e, tokens, mw.IdempotencyMiddleware(d.Redis, cfg.IdempotencyTTL(), log))
	return e
}
