// file: internals/features/lessons/sync/model/sync_snapshot_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

/* =======================================================
   SyncSnapshotModel — map ke tabel class_sync_data
   Satu baris per user: SELURUH daftar plan sebagai satu
   dokumen JSON. Sinkronisasi = whole-list replacement,
   tidak ada merge per field.
   ======================================================= */

type SyncSnapshotModel struct {
	// PK = user id (string) — satu snapshot per akun
	SyncSnapshotID string `json:"sync_snapshot_id" gorm:"type:text;primaryKey;column:sync_snapshot_id"`

	SyncSnapshotPlans datatypes.JSON `json:"sync_snapshot_plans" gorm:"type:jsonb;not null;column:sync_snapshot_plans"`

	SyncSnapshotUpdatedAt time.Time `json:"sync_snapshot_updated_at" gorm:"column:sync_snapshot_updated_at;not null;autoUpdateTime"`
}

func (SyncSnapshotModel) TableName() string {
	return "class_sync_data"
}
