package routes

import (
	"bizops-backend/config"
	"bizops-backend/controllers"
	"bizops-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, renewals *services.RenewalService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	r.Use(config.RequestLogger())

	health := &controllers.HealthController{DB: db}
	r.GET("/", health.Root)
	r.GET("/test", health.TestDatabase)

	uploads := controllers.NewUploadController(db)
	r.GET("/uploads/:filename", uploads.ServeUpload)

	api := r.Group("/api")
	{
		customers := &controllers.CustomerController{DB: db}
		api.POST("/customers", customers.CreateCustomer)
		api.GET("/customers", customers.GetCustomers)

		pos := &controllers.PurchaseOrderController{DB: db}
		api.POST("/pos", pos.CreatePO)
		api.GET("/pos", pos.GetPOs)

		invoices := &controllers.InvoiceController{DB: db}
		api.POST("/invoices", invoices.CreateInvoice)
		api.GET("/invoices", invoices.GetInvoices)

		payments := &controllers.PaymentController{DB: db}
		api.POST("/payments", payments.CreatePayment)
		api.GET("/payments", payments.GetPayments)

		agreements := &controllers.AgreementController{DB: db, Renewals: renewals}
		api.POST("/agreements", agreements.CreateAgreement)
		api.GET("/agreements", agreements.GetAgreements)
		api.POST("/agreements/check-renewals", agreements.CheckRenewals)

		dashboard := &controllers.DashboardController{DB: db}
		api.GET("/dashboard-summary", dashboard.GetDashboardSummary)

		api.POST("/upload/:entity/:entity_id/:field", uploads.UploadDocument)
	}

	return r
}
