// file: internals/databases/migrate.go
package database

import (
	"log"

	planModel "classtrack_backend/internals/features/lessons/plans/model"
	syncModel "classtrack_backend/internals/features/lessons/sync/model"
	userModel "classtrack_backend/internals/features/users/auth/model"
)

// MigrateDB menjalankan auto-migration semua tabel aplikasi.
// Dipanggil sekali saat boot, setelah ConnectDB.
func MigrateDB() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&planModel.PlanModel{},
		&planModel.ClassScheduleModel{},
		&planModel.AttendanceRecordModel{},
		&syncModel.SyncSnapshotModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi DB: %v", err)
	}
	log.Println("✅ Migrasi DB selesai.")
}
