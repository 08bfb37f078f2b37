package router

import (
	"gym_crm_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClientRoutes sets up the client routes.
func SetupClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := rg.Group("/clients")
	{
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.GET("/:id", clientHandler.GetClientByID)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupTrainerRoutes sets up the trainer routes.
func SetupTrainerRoutes(rg *gin.RouterGroup, trainerHandler *handlers.TrainerHandler) {
	trainerRoutes := rg.Group("/trainers")
	{
		trainerRoutes.POST("", trainerHandler.CreateTrainer)
		trainerRoutes.GET("", trainerHandler.GetTrainers)
		trainerRoutes.GET("/:id", trainerHandler.GetTrainerByID)
		trainerRoutes.PUT("/:id", trainerHandler.UpdateTrainer)
		trainerRoutes.DELETE("/:id", trainerHandler.DeleteTrainer)
	}
}

// SetupGroupRoutes sets up the training group routes.
func SetupGroupRoutes(rg *gin.RouterGroup, groupHandler *handlers.GroupHandler) {
	groupRoutes := rg.Group("/groups")
	{
		groupRoutes.POST("", groupHandler.CreateGroup)
		groupRoutes.GET("", groupHandler.GetGroups)
		groupRoutes.GET("/:id", groupHandler.GetGroupByID)
		groupRoutes.PUT("/:id", groupHandler.UpdateGroup)
		groupRoutes.DELETE("/:id", groupHandler.DeleteGroup)
	}
}

// SetupPeriodRoutes sets up the subscription period routes.
func SetupPeriodRoutes(rg *gin.RouterGroup, periodHandler *handlers.PeriodHandler) {
	periodRoutes := rg.Group("/periods")
	{
		periodRoutes.POST("", periodHandler.CreatePeriod)
		periodRoutes.GET("", periodHandler.GetPeriods)
		periodRoutes.GET("/:id", periodHandler.GetPeriodByID)
		periodRoutes.PUT("/:id", periodHandler.UpdatePeriod)
		periodRoutes.DELETE("/:id", periodHandler.DeletePeriod)
	}
}

// SetupPaymentRoutes sets up the payment method routes.
func SetupPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := rg.Group("/payments")
	{
		paymentRoutes.POST("", paymentHandler.CreatePayment)
		paymentRoutes.GET("", paymentHandler.GetPayments)
		paymentRoutes.GET("/:id", paymentHandler.GetPaymentByID)
		paymentRoutes.PUT("/:id", paymentHandler.UpdatePayment)
		paymentRoutes.DELETE("/:id", paymentHandler.DeletePayment)
	}
}

// SetupFreezeSettingsRoutes sets up the freeze settings routes.
// The camelCase path matches what the admin UI requests.
func SetupFreezeSettingsRoutes(rg *gin.RouterGroup, freezeHandler *handlers.FreezeSettingsHandler) {
	freezeRoutes := rg.Group("/freezeSettings")
	{
		freezeRoutes.POST("", freezeHandler.CreateFreezeSettings)
		freezeRoutes.GET("", freezeHandler.GetFreezeSettings)
		freezeRoutes.GET("/:id", freezeHandler.GetFreezeSettingsByID)
		freezeRoutes.PUT("/:id", freezeHandler.UpdateFreezeSettings)
		freezeRoutes.DELETE("/:id", freezeHandler.DeleteFreezeSettings)
	}
}

// SetupExportRoutes sets up the spreadsheet export routes.
func SetupExportRoutes(rg *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	exportRoutes := rg.Group("/export")
	{
		exportRoutes.GET("/clients", exportHandler.ExportClients)
		exportRoutes.GET("/references", exportHandler.ExportReferences)
	}
}
