package main

import (
	"os"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/config"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/routes"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/scheduler"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	db := config.ConnectDB(log)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Kategori{},
		&models.Supplier{},
		&models.Barang{},
		&models.BarangLot{},
		&models.Transaksi{},
		&models.StockOpname{},
		&models.DetailOpname{},
	); err != nil {
		log.WithError(err).Fatal("auto-migrate gagal")
	}

	config.SeedDefaults(db, log)

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.SetSecret(s)
	}

	sched := scheduler.NewScheduler(service.NewLaporan(db), log)
	sched.Start()
	defer sched.Stop()

	r := gin.Default()
	routes.SetupRoutes(r, db)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "SIM Logistik Lab API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server berhenti")
	}
}
