package routes

import (
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/controllers"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/middlewares"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	ledger := service.NewLedger(db)
	lotStore := service.NewLotStore(db)
	opname := service.NewOpname(db)
	aggregate := service.NewAggregate(db)
	laporan := service.NewLaporan(db)

	lotCtrl := controllers.NewLotController(lotStore)
	trxCtrl := controllers.NewTransaksiController(ledger)
	opnameCtrl := controllers.NewOpnameController(opname)
	aggCtrl := controllers.NewAggregateController(aggregate)
	laporanCtrl := controllers.NewLaporanController(laporan)
	dashboardCtrl := controllers.NewDashboardController(laporan)

	api := r.Group("/api")
	{
		api.POST("/login", controllers.Login)

		auth := api.Group("/", middlewares.AuthMiddleware())
		{
			auth.GET("/profile", controllers.Profile)
			auth.PUT("/profile", controllers.UpdateProfile)
			auth.PUT("/profile/password", controllers.ChangePassword)

			// Manajemen user hanya untuk admin
			users := auth.Group("/users", middlewares.RequireRole(models.RoleAdmin))
			{
				users.GET("/", controllers.GetAllUsers)
				users.POST("/", controllers.CreateUser)
				users.PUT("/:id/toggle", controllers.ToggleUserActive)
			}

			gudang := middlewares.RequireRole(models.RoleAdmin, models.RolePJGudang)

			kategori := auth.Group("/kategori")
			{
				kategori.GET("/", controllers.GetAllKategori)
				kategori.GET("/:id", controllers.GetKategoriByID)
				kategori.POST("/", gudang, controllers.CreateKategori)
				kategori.PUT("/:id", gudang, controllers.UpdateKategori)
				kategori.DELETE("/:id", gudang, controllers.DeleteKategori)
			}

			supplier := auth.Group("/supplier")
			{
				supplier.GET("/", controllers.GetAllSupplier)
				supplier.GET("/:id", controllers.GetSupplierByID)
				supplier.POST("/", gudang, controllers.CreateSupplier)
				supplier.PUT("/:id", gudang, controllers.UpdateSupplier)
				supplier.DELETE("/:id", gudang, controllers.DeleteSupplier)
			}

			barang := auth.Group("/barang")
			{
				barang.GET("/", controllers.GetAllBarang)
				barang.GET("/:id", controllers.GetBarangByID)
				barang.GET("/:id/ringkasan", aggCtrl.GetBarangAggregate)
				barang.GET("/:id/lot", lotCtrl.ListByBarang)
				barang.POST("/", gudang, controllers.CreateBarang)
				barang.PUT("/:id", gudang, controllers.UpdateBarang)
				barang.PUT("/:id/status", gudang, controllers.ToggleBarangStatus)
				barang.DELETE("/:id", gudang, controllers.DeleteBarang)
			}

			lot := auth.Group("/lot", gudang)
			{
				lot.POST("/", lotCtrl.Create)
				lot.PUT("/:id", lotCtrl.Update)
				lot.DELETE("/:id", lotCtrl.Delete)
			}

			transaksi := auth.Group("/transaksi")
			{
				transaksi.GET("/", trxCtrl.List)
				transaksi.GET("/:id", trxCtrl.Get)
				transaksi.POST("/", gudang, trxCtrl.Create)
				transaksi.PUT("/:id", gudang, trxCtrl.Update)
				transaksi.DELETE("/:id", gudang, trxCtrl.Delete)
			}

			op := auth.Group("/opname")
			{
				op.GET("/", opnameCtrl.List)
				op.GET("/:id", opnameCtrl.Get)
				op.POST("/", gudang, opnameCtrl.Open)
				op.POST("/:id/item", gudang, opnameCtrl.AddItem)
				op.DELETE("/:id/item/:detailID", gudang, opnameCtrl.RemoveItem)
				// Validasi hasil opname hanya oleh admin
				op.POST("/:id/validasi", middlewares.RequireRole(models.RoleAdmin), opnameCtrl.Validate)
			}

			laporanGrp := auth.Group("/laporan")
			{
				laporanGrp.GET("/stok/kategori/:id", laporanCtrl.StokPerKategori)
				laporanGrp.GET("/stok/rendah", laporanCtrl.LowStock)
				laporanGrp.GET("/kadaluarsa", laporanCtrl.LotKadaluarsa)
				laporanGrp.GET("/transaksi", laporanCtrl.Transaksi)
			}

			auth.GET("/dashboard", dashboardCtrl.Summary)
		}
	}
}
