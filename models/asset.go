package models

import "time"

// Status penggunaan aset yang dikenal.
const (
	StatusDimanfaatkan = "Dimanfaatkan"
	StatusIdle         = "Idle"
	StatusSengketa     = "Sengketa"
)

func ValidStatusPenggunaan(s string) bool {
	switch s {
	case StatusDimanfaatkan, StatusIdle, StatusSengketa:
		return true
	}
	return false
}

type Asset struct {
	ID               uint      `gorm:"primaryKey"          json:"id"`
	KodeAset         string    `gorm:"uniqueIndex;size:50" json:"kode_aset"`
	NamaAset         string    `gorm:"size:255"            json:"nama_aset"`
	LuasM2           *float64  `json:"luas_m2"`
	NilaiAset        *float64  `json:"nilai_aset"`
	TahunPerolehan   *int      `json:"tahun_perolehan"`
	StatusHukum      *string   `gorm:"size:50"   json:"status_hukum"`
	StatusPenggunaan *string   `gorm:"size:50"   json:"status_penggunaan"`
	AlamatLokasi     *string   `gorm:"type:text" json:"alamat_lokasi"`
	Geometry         *Geometry `gorm:"type:jsonb" json:"geometry,omitempty"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
