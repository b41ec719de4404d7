package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kelasin/kelasin-api/internal/middleware"
	"github.com/kelasin/kelasin-api/internal/service"
	"github.com/kelasin/kelasin-api/pkg/config"
	"github.com/kelasin/kelasin-api/pkg/logger"
	corsmiddleware "github.com/kelasin/kelasin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/kelasin/kelasin-api/pkg/middleware/requestid"

	"go.uber.org/zap"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *service.MetricsService
	DB      *sqlx.DB

	Auth       *service.AuthService
	Course     *service.CourseService
	Catalog    *service.CatalogService
	Enrollment *service.EnrollmentService
	Module     *service.ModuleService
	Order      *service.OrderService
	Review     *service.ReviewService
	Upload     *service.UploadService

	UploadDir string
}

// NewRouter assembles the gin engine with all middleware and routes.
//
// Reads on the public catalog stay open; every mutating route and the
// user directory sit behind the JWT gate.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	auth := NewAuthHandler(deps.Auth)
	course := NewCourseHandler(deps.Course)
	catalog := NewCatalogHandler(deps.Catalog)
	enrollment := NewEnrollmentHandler(deps.Enrollment)
	module := NewModuleHandler(deps.Module)
	order := NewOrderHandler(deps.Order)
	review := NewReviewHandler(deps.Review)
	upload := NewUploadHandler(deps.Upload, deps.Metrics)

	protected := middleware.JWT(deps.Auth)

	r.GET("/health", func(c *gin.Context) {
		if deps.DB != nil {
			start := time.Now()
			if err := deps.DB.PingContext(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unreachable"})
				return
			}
			deps.Metrics.ObserveDBQuery("ping", time.Since(start))
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/register", auth.Register)
	r.GET("/verifikasi-email/:token", auth.VerifyEmail)
	r.POST("/login", auth.Login)
	r.GET("/user", protected, auth.ListUsers)
	r.GET("/user/:id", protected, auth.GetUser)

	r.GET("/course", course.List)
	r.GET("/course/:id", course.Get)
	r.POST("/course", protected, course.Create)
	r.PUT("/course/:id", protected, course.Update)
	r.DELETE("/course/:id", protected, course.Delete)

	r.GET("/category", catalog.ListCategories)
	r.GET("/category/:id", catalog.GetCategory)
	r.POST("/category", protected, catalog.CreateCategory)
	r.PUT("/category/:id", protected, catalog.UpdateCategory)
	r.DELETE("/category/:id", protected, catalog.DeleteCategory)

	r.GET("/tutor", catalog.ListTutors)
	r.GET("/tutor/:id", catalog.GetTutor)
	r.POST("/tutor", protected, catalog.CreateTutor)
	r.PUT("/tutor/:id", protected, catalog.UpdateTutor)
	r.DELETE("/tutor/:id", protected, catalog.DeleteTutor)

	r.GET("/enrollment", protected, enrollment.ListMine)
	r.POST("/enrollment", protected, enrollment.Enroll)
	r.DELETE("/enrollment/:id", protected, enrollment.Delete)
	r.GET("/course/:id/enrollment/export", protected, enrollment.ExportByCourse)

	r.GET("/course/:id/module", module.ListByCourse)
	r.POST("/course/:id/module", protected, module.Create)
	r.PUT("/module/:id", protected, module.Update)
	r.DELETE("/module/:id", protected, module.Delete)
	r.GET("/module/:id/material", module.ListMaterials)
	r.POST("/module/:id/material", protected, module.CreateMaterial)
	r.DELETE("/material/:id", protected, module.DeleteMaterial)

	r.GET("/order", protected, order.ListMine)
	r.POST("/order", protected, order.Create)
	r.GET("/order/:id", protected, order.Get)
	r.PUT("/order/:id", protected, order.UpdateStatus)
	r.GET("/order/:id/payment", protected, order.ListPayments)
	r.POST("/order/:id/payment", protected, order.AddPayment)
	r.GET("/order/:id/receipt", protected, order.Receipt)

	r.GET("/course/:id/review", review.ListByCourse)
	r.POST("/course/:id/review", protected, review.Create)
	r.DELETE("/review/:id", protected, review.Delete)
	r.GET("/course/:id/pretest", review.ListPreTests)
	r.POST("/course/:id/pretest", protected, review.CreatePreTest)
	r.DELETE("/pretest/:id", protected, review.DeletePreTest)

	r.POST("/upload", protected, upload.Upload)
	r.Static("/upload", deps.UploadDir)

	return r
}
