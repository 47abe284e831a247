package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"teamup/internal/api/handler"
	"teamup/internal/api/middleware"
	"teamup/internal/core/matching"
	"teamup/internal/pkg/config"
	"teamup/internal/repository"
	"teamup/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB, engine *matching.Engine, logger *zap.Logger) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// 初始化Service
	authService := service.NewAuthService(&cfg.Auth, userRepo)
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(engine, teamRepo, teamMemberRepo, userRepo)
	offerService := service.NewOfferService(engine, offerRepo, teamMemberRepo)
	reviewService := service.NewReviewService(db, reviewRepo, teamMemberRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, reviewService)
	teamHandler := handler.NewTeamHandler(teamService)
	offerHandler := handler.NewOfferHandler(offerService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 认证相关(无需token)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		// 需要认证的路由
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			// 用户
			userGroup := authed.Group("/user")
			{
				userGroup.GET("/me", userHandler.GetMe)          // 我的资料
				userGroup.PUT("/me", userHandler.Update)         // 更新资料
				userGroup.GET("/:id", userHandler.GetByID)       // 用户资料
				userGroup.GET("/:id/review", userHandler.ListReviews) // 用户收到的评价
			}

			// 团队
			teamGroup := authed.Group("/team")
			{
				teamGroup.POST("", teamHandler.Create)             // 创建团队
				teamGroup.GET("", teamHandler.ListRecruiting)      // 招募中团队分页
				teamGroup.PUT("", teamHandler.Update)              // 更新团队
				teamGroup.GET("/current", teamHandler.GetCurrent)  // 我所在的团队
				teamGroup.GET("/:id", teamHandler.GetByID)         // 团队详情
				teamGroup.POST("/fire", teamHandler.Fire)          // 移出队员
				teamGroup.POST("/quit", teamHandler.Quit)          // 退出团队
				teamGroup.POST("/complete", teamHandler.Complete)  // 项目完成
				teamGroup.POST("/disband", teamHandler.Disband)    // 解散团队
			}

			// 提议
			offerGroup := authed.Group("/offer")
			{
				offerGroup.POST("/apply", offerHandler.Apply)          // 用户申请
				offerGroup.POST("/invite", offerHandler.Invite)        // 队长邀请
				offerGroup.POST("/:id/accept", offerHandler.Accept)    // 接受
				offerGroup.POST("/:id/decline", offerHandler.Decline)  // 拒绝
				offerGroup.POST("/:id/cancel", offerHandler.Cancel)    // 撤回
				offerGroup.GET("/user", offerHandler.ListByUser)       // 我的提议分页
				offerGroup.GET("/team", offerHandler.ListByTeam)       // 团队提议分页
			}

			// 评价
			reviewGroup := authed.Group("/review")
			{
				reviewGroup.GET("/team", reviewHandler.ListReviewableTeams) // 可评价团队
				reviewGroup.POST("/team/:id", reviewHandler.Submit)         // 批量评价
			}
		}
	}

	return r
}
