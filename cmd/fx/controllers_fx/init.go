package controllers_fx

import (
	"go.uber.org/fx"

	"kamehameha/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewAwardController),
	fx.Provide(controllers.NewCheckInController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewCoachController))
