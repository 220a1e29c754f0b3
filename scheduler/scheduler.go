package scheduler

import (
	"context"
	"time"

	"github.com/majidisadev/rsud-sim-logistik-lab-sub000/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler menjalankan pengecekan stok terjadwal: lot yang mendekati
// kadaluarsa dan barang yang stoknya di bawah minimal.
type Scheduler struct {
	cron    *cron.Cron
	laporan *service.Laporan
	log     *logrus.Logger
}

func NewScheduler(laporan *service.Laporan, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		laporan: laporan,
		log:     log,
	}
}

// Start mendaftarkan pengecekan harian jam 07:00 lalu menjalankan cron.
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc("0 7 * * *", s.cekStokHarian); err != nil {
		s.log.WithError(err).Error("gagal mendaftarkan jadwal cek stok")
		return
	}
	s.cron.Start()
	s.log.Info("scheduler cek stok harian aktif")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) cekStokHarian() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lots, err := s.laporan.LotKadaluarsaDalam(ctx, 30)
	if err != nil {
		s.log.WithError(err).Error("gagal mengecek lot kadaluarsa")
	} else {
		for _, lot := range lots {
			s.log.WithFields(logrus.Fields{
				"barang":     lot.Barang.Nama,
				"nomor_lot":  lot.NomorLot,
				"stok":       lot.Stok,
				"kadaluarsa": lot.Kadaluarsa.Format("2006-01-02"),
			}).Warn("lot mendekati kadaluarsa")
		}
	}

	rendah, err := s.laporan.LowStock(ctx)
	if err != nil {
		s.log.WithError(err).Error("gagal mengecek stok rendah")
		return
	}
	for _, row := range rendah {
		s.log.WithFields(logrus.Fields{
			"barang":       row.Nama,
			"total_stok":   row.TotalStok,
			"stok_minimal": row.StokMinimal,
		}).Warn("stok barang di bawah minimal")
	}
}
