package controllers

import (
	"net/http"
	"strconv"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/config"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/models"
	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Manajemen user operasional, khusus Admin.

type CreateUserInput struct {
	Nama     string `json:"nama" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

func CreateUser(c *gin.Context) {
	var in CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch in.Role {
	case models.RoleAdmin, models.RolePJGudang, models.RoleUser:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role tidak dikenal"})
		return
	}

	var exists models.User
	if err := config.DB.Where("username = ?", in.Username).First(&exists).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username sudah dipakai"})
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	user := models.User{
		Nama:      in.Nama,
		Username:  in.Username,
		Password:  string(hash),
		Role:      in.Role,
		AvatarURL: utils.DefaultAvatar(in.Nama),
		IsActive:  true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat user"})
		return
	}
	utils.Success(c, "User berhasil dibuat", user)
}

func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("nama ASC").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data user", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data user", users)
}

// ToggleUserActive menonaktifkan/mengaktifkan akun tanpa menghapusnya,
// supaya riwayat transaksi tetap menunjuk ke user yang valid.
func ToggleUserActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User tidak ditemukan"})
		return
	}

	if err := config.DB.Model(&user).Update("is_active", !user.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengubah status user"})
		return
	}
	utils.Success(c, "Status user berhasil diubah", user)
}
