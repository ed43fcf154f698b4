package models

import "errors"

// Jenis error domain yang stabil. Controller memetakan jenis ini ke status
// HTTP lewat satu helper; error infrastruktur lain tetap generik.
var (
	ErrInvalidArgument = errors.New("data tidak valid")
	ErrNotFound        = errors.New("data tidak ditemukan")
	ErrUnauthenticated = errors.New("tidak terautentikasi")
	ErrForbidden       = errors.New("akses ditolak")
)
