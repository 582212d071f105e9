package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"promptly/cmd/fx/accountfx"
	"promptly/cmd/fx/blogfx"
	"promptly/cmd/fx/controllersfx"
	"promptly/cmd/fx/dbfx"
	"promptly/cmd/fx/mailfx"
	"promptly/cmd/fx/outreachfx"
	"promptly/cmd/fx/promptfx"
	"promptly/cmd/fx/servicefx"
	"promptly/cmd/fx/storagefx"
	"promptly/cmd/fx/submissionfx"
	"promptly/internal/api/controllers"
	"promptly/internal/policy"
	"promptly/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		dbfx.Module,
		mailfx.Module,
		storagefx.Module,
		accountfx.Module,
		promptfx.Module,
		submissionfx.Module,
		blogfx.Module,
		servicefx.Module,
		outreachfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + os.Getenv("PORT"),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at %s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	promptController *controllers.PromptController,
	submissionController *controllers.SubmissionController,
	blogController *controllers.BlogController,
	serviceController *controllers.ServiceController,
	outreachController *controllers.OutreachController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		promptController,
		submissionController,
		blogController,
		serviceController,
		outreachController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	promptController *controllers.PromptController,
	submissionController *controllers.SubmissionController,
	blogController *controllers.BlogController,
	serviceController *controllers.ServiceController,
	outreachController *controllers.OutreachController) {

	api := r.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	api.GET("/prompts", promptController.ListPrompts)
	api.GET("/prompts/:id", promptController.GetPromptByID)

	api.POST("/submit", middleware.OptionalAuthMiddleware(), submissionController.Submit)
	api.GET("/community", submissionController.ListCommunity)

	api.GET("/blog", blogController.ListPublished)
	api.GET("/blog/:slug", blogController.GetBySlug)

	servicesGroup := api.Group("/services")
	servicesGroup.GET("", serviceController.ListServices)
	servicesGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RequireCapability(policy.CapServicesManage), serviceController.CreateService)
	servicesGroup.POST("/request", middleware.JWTAuthMiddleware(), serviceController.CreateRequest)
	servicesGroup.GET("/request", middleware.JWTAuthMiddleware(), serviceController.ListOwnRequests)
	servicesGroup.PUT("/:id", middleware.JWTAuthMiddleware(), middleware.RequireCapability(policy.CapServicesManage), serviceController.UpdateService)
	servicesGroup.DELETE("/:id", middleware.JWTAuthMiddleware(), middleware.RequireCapability(policy.CapServicesManage), serviceController.DeleteService)

	api.POST("/contact", outreachController.Contact)
	api.POST("/newsletter", outreachController.Subscribe)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())

	admin.POST("/prompts", middleware.RequireCapability(policy.CapPromptsManage), promptController.CreatePrompt)

	admin.GET("/submissions", middleware.RequireCapability(policy.CapSubmissionsModerate), submissionController.ListForModeration)
	admin.PATCH("/submissions/:id", middleware.RequireCapability(policy.CapSubmissionsModerate), submissionController.Moderate)

	adminBlog := admin.Group("/blog")
	adminBlog.GET("", middleware.RequireCapability(policy.CapBlogAuthor), blogController.ListAll)
	adminBlog.POST("", middleware.RequireCapability(policy.CapBlogAuthor), blogController.Create)
	adminBlog.GET("/:id", middleware.RequireCapability(policy.CapBlogAuthor), blogController.GetByID)
	adminBlog.PATCH("/:id", middleware.RequireCapability(policy.CapBlogAuthor), blogController.Update)
	adminBlog.DELETE("/:id", middleware.RequireCapability(policy.CapBlogDelete), blogController.Delete)

	admin.GET("/requests", middleware.RequireCapability(policy.CapRequestsManage), serviceController.ListAllRequests)
	admin.PATCH("/requests", middleware.RequireCapability(policy.CapRequestsManage), serviceController.UpdateRequestStatus)
	admin.PATCH("/requests/payment", middleware.RequireCapability(policy.CapRequestsManage), serviceController.UpdateRequestPayment)
}
