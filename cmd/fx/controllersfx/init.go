package controllersfx

import (
	"go.uber.org/fx"
	"promptly/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewPromptController,
	controllers.NewSubmissionController,
	controllers.NewBlogController,
	controllers.NewServiceController,
	controllers.NewOutreachController,
)
