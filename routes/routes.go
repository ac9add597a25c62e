package routes

import (
	"dentalpro-backend/config"
	"dentalpro-backend/controllers"
	"dentalpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())
	r.Use(utils.CurrencyGuard())

	auth := r.Group("/auth")
	{
		// Register resolves the manager's token when one is sent; the first
		// account is created without one.
		auth.POST("/register", utils.OptionalAuthMiddleware(), controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Patient routes
		patients := api.Group("/patients")
		{
			patients.POST("", controllers.CreatePatient)
			patients.GET("", controllers.GetPatients)
			patients.GET("/:id", controllers.GetPatient)
			patients.PUT("/:id", controllers.UpdatePatient)
			patients.GET("/:id/files", controllers.GetPatientFiles)
			patients.POST("/:id/files", controllers.AttachPatientFiles)
			patients.GET("/:id/teeth", controllers.GetToothMap)
			patients.PUT("/:id/teeth", controllers.SetToothStatus)
		}

		// Doctor routes
		doctors := api.Group("/doctors")
		{
			doctors.POST("", controllers.CreateDoctor)
			doctors.GET("", controllers.GetDoctors)
			doctors.GET("/:id", controllers.GetDoctor)
			doctors.PUT("/:id", controllers.UpdateDoctor)
		}

		// Dental chart catalog
		toothStatuses := api.Group("/tooth-statuses")
		{
			toothStatuses.POST("", controllers.CreateToothStatus)
			toothStatuses.GET("", controllers.GetToothStatuses)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.PUT("/:id", controllers.UpdateAppointment)
		}

		// Session routes
		sessions := api.Group("/sessions")
		{
			sessions.POST("", controllers.CreateSession)
			sessions.GET("", controllers.GetSessions)
			sessions.GET("/:id", controllers.GetSession)
			sessions.PUT("/:id", controllers.UpdateSession)
			sessions.POST("/:id/materials", controllers.LinkSessionMaterials)
			sessions.POST("/:id/invoice", controllers.GenerateSessionInvoice)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.POST("/:id/pay", controllers.PayInvoice)
			invoices.POST("/:id/cancel", controllers.CancelInvoice)
		}

		// Cashbox routes
		cashbox := api.Group("/cashbox")
		{
			cashbox.POST("/receipts", controllers.CreateReceipt)
			cashbox.GET("/receipts", controllers.GetReceipts)
			cashbox.POST("/receipts/:id/void", controllers.VoidReceipt)
			cashbox.POST("/payments", controllers.CreatePaymentVoucher)
			cashbox.GET("/payments", controllers.GetPaymentVouchers)
			cashbox.POST("/payments/:id/void", controllers.VoidPaymentVoucher)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("/items", controllers.CreateInventoryItem)
			inventory.GET("/items", controllers.GetInventoryItems)
			inventory.POST("/batches", controllers.CreateInventoryBatch)
			inventory.GET("/batches", controllers.GetInventoryBatches)
			inventory.POST("/batches/:id/consume", controllers.ConsumeInventoryBatch)
			inventory.GET("/expiring", controllers.GetSoonToExpire)
		}

		// Supplier routes
		suppliers := api.Group("/suppliers")
		{
			suppliers.POST("", controllers.CreateSupplier)
			suppliers.GET("", controllers.GetSuppliers)
			suppliers.PUT("/:id", controllers.UpdateSupplier)
		}

		// Lab order routes
		lab := api.Group("/lab-orders")
		{
			lab.POST("", controllers.CreateLabOrder)
			lab.GET("", controllers.GetLabOrders)
			lab.PUT("/:id/status", controllers.UpdateLabOrderStatus)
		}

		// Report routes
		reportController := controllers.ReportController{}
		reports := api.Group("/reports")
		{
			reports.GET("/income", reportController.GetIncomeByPeriod)
			reports.GET("/expenses", reportController.GetExpenseByCategory)
			reports.GET("/doctors", reportController.GetNetByDoctor)
			reports.GET("/cash-balance", reportController.GetCashBalance)
		}

		// Audit routes
		api.GET("/audit", controllers.GetAuditLogs)

		// Backup routes
		backup := api.Group("/backup")
		{
			backup.POST("/export", controllers.ExportBackup)
			backup.POST("/import", controllers.ImportBackup)
		}
	}

	return r
}
