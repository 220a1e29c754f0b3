package config

import (
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaults mengisi akun admin awal dan kategori dasar kalau belum ada.
func SeedDefaults(db *gorm.DB, log *logrus.Logger) {
	var admins int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
		log.WithError(err).Warn("gagal cek akun admin")
		return
	}
	if admins == 0 {
		hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin := models.User{
			Nama:      "Administrator",
			Username:  "admin",
			Password:  string(hash),
			Role:      models.RoleAdmin,
			AvatarURL: utils.DefaultAvatar("Administrator"),
			IsActive:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.WithError(err).Warn("gagal seed admin")
		} else {
			log.Info("akun admin default dibuat (username: admin)")
		}
	}

	kategoris := []models.Kategori{
		{Nama: "Reagen", Deskripsi: "Reagen pemeriksaan laboratorium"},
		{Nama: "BHP", Deskripsi: "Bahan habis pakai"},
		{Nama: "Alkes", Deskripsi: "Alat kesehatan penunjang"},
	}
	for _, k := range kategoris {
		var count int64
		if err := db.Model(&models.Kategori{}).Where("nama = ?", k.Nama).Count(&count).Error; err != nil {
			continue
		}
		if count == 0 {
			if err := db.Create(&k).Error; err != nil {
				log.WithError(err).WithField("kategori", k.Nama).Warn("gagal seed kategori")
			}
		}
	}
}
