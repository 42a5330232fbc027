package api

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/qingliul/huangbinhong-backend-go/internal/config"
	"github.com/qingliul/huangbinhong-backend-go/internal/handler"
	"github.com/qingliul/huangbinhong-backend-go/internal/metrics"
	"github.com/qingliul/huangbinhong-backend-go/internal/middleware"
	"github.com/qingliul/huangbinhong-backend-go/internal/repository"
	"github.com/qingliul/huangbinhong-backend-go/internal/resource"
	"github.com/qingliul/huangbinhong-backend-go/internal/service"
)

// SetupRouter 设置路由。ctx 结束时限流器的清理协程随之退出。
func SetupRouter(ctx context.Context, cfg *config.Config, db *sql.DB, m *metrics.Manager) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}
	if m == nil {
		m = metrics.Default()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(cfg.Server.SlowRequest),
		middleware.Metrics(m),
		middleware.Recovery(),
		middleware.CORS(cfg.Server.CORS.AllowedOrigins, cfg.Server.CORS.MaxAge),
	)
	if cfg.Server.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit.RequestsPerSecond, cfg.Server.RateLimit.Burst)
		go limiter.Run(ctx, time.Minute)
		r.Use(limiter.Middleware())
	}

	// 仓储与服务
	urls := resource.Resolver{
		StorageType:  cfg.Resource.StorageType,
		LocalBaseURL: cfg.Resource.LocalBaseURL,
		OSSBaseURL:   cfg.Resource.OSSBaseURL,
	}
	relationshipService := service.NewRelationshipService(
		repository.NewPersonRepository(db),
		repository.NewTrajectoryRepository(db),
		repository.NewTimelineEventRepository(db),
		repository.NewRelationshipRepository(db),
		cfg.Subject,
		m,
	)
	worksService := service.NewWorksService(repository.NewWorksRepository(db), urls, cfg.Pagination.MaxPageSize, m)
	lifeTimelineService := service.NewLifeTimelineService(repository.NewLifeTimelineRepository(db), urls, cfg.Pagination.MaxPageSize)

	relationshipHandler := handler.NewRelationshipHandler(relationshipService)
	worksHandler := handler.NewWorksHandler(worksService)
	lifeTimelineHandler := handler.NewLifeTimelineHandler(lifeTimelineService)
	healthHandler := handler.NewHealthHandler(db)

	// 健康检查与监控
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api")
	{
		// 黄宾虹：地点、足迹、时间轴、人物
		hbh := api.Group("/huangbinhong")
		{
			hbh.GET("/core", relationshipHandler.GetCore)
			hbh.GET("/locations", relationshipHandler.GetLocations)
			hbh.GET("/footprints", relationshipHandler.GetFootprints)
			hbh.GET("/footprints/route", relationshipHandler.GetFootprintRoute)
			hbh.GET("/location-events", relationshipHandler.GetLocationEvents)
			hbh.GET("/timeline", relationshipHandler.GetTimeline)
			hbh.GET("/timeline/detail", relationshipHandler.GetTimelineDetail)
			hbh.GET("/person/detail", relationshipHandler.GetPersonDetail)
			hbh.GET("/relationships", relationshipHandler.GetRelationships)
			hbh.GET("/all", relationshipHandler.GetAll)
		}

		// 作品与标签
		works := api.Group("/works")
		{
			works.GET("/list", worksHandler.List)
			works.GET("/detail", worksHandler.Detail)
			works.GET("/by-tag", worksHandler.ByTag)
			works.GET("/by-period", worksHandler.ByPeriod)
			works.GET("/category/stats", worksHandler.CategoryStats)
			works.GET("/category/stats-with-total", worksHandler.CategoryStatsWithTotal)
			works.GET("/tags", worksHandler.Tags)
			works.GET("/tags/search", worksHandler.SearchTags)
		}

		// 生平编年
		timeline := api.Group("/timeline")
		{
			timeline.GET("/list", lifeTimelineHandler.List)
			timeline.GET("/detail", lifeTimelineHandler.Detail)
			timeline.GET("/year/art-stats", lifeTimelineHandler.YearArtStats)
		}
	}

	return r, nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := handler.RegisterValidators(v); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}
	return nil
}
