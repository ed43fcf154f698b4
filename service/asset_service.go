package service

import (
	"context"
	"fmt"
	"time"

	"github.com/azzami13/Mapasset/models"
	"github.com/azzami13/Mapasset/repository"
)

// listLimit membatasi jumlah baris katalog yang dikembalikan.
const listLimit = 200

// ===== DTO =====

type AssetSummary struct {
	ID               uint      `json:"id"`
	KodeAset         string    `json:"kode_aset"`
	NamaAset         string    `json:"nama_aset"`
	LuasM2           *float64  `json:"luas_m2"`
	NilaiAset        *float64  `json:"nilai_aset"`
	TahunPerolehan   *int      `json:"tahun_perolehan"`
	StatusHukum      *string   `json:"status_hukum"`
	StatusPenggunaan *string   `json:"status_penggunaan"`
	AlamatLokasi     *string   `json:"alamat_lokasi"`
	UpdatedAt        time.Time `json:"updated_at"`
	GeometryType     *string   `json:"geometry_type"` // "Point", "Polygon", atau null
}

type CreatePointInput struct {
	KodeAset     string
	NamaAset     string
	Lat          float64
	Lng          float64
	AlamatLokasi *string
}

type CreatePolygonInput struct {
	KodeAset     string
	NamaAset     string
	Coordinates  [][2]float64 // [lng, lat]
	AlamatLokasi *string
}

// UpdateAssetInput adalah payload parsial; hanya field non-nil yang
// diterapkan. Geometry sengaja tidak bisa diubah lewat jalur ini.
type UpdateAssetInput struct {
	KodeAset         *string  `json:"kode_aset"`
	NamaAset         *string  `json:"nama_aset"`
	LuasM2           *float64 `json:"luas_m2"`
	NilaiAset        *float64 `json:"nilai_aset"`
	TahunPerolehan   *int     `json:"tahun_perolehan"`
	StatusHukum      *string  `json:"status_hukum"`
	StatusPenggunaan *string  `json:"status_penggunaan"`
	AlamatLokasi     *string  `json:"alamat_lokasi"`
}

type FeatureProperties struct {
	ID               uint     `json:"id"`
	KodeAset         string   `json:"kode_aset"`
	NamaAset         string   `json:"nama_aset"`
	LuasM2           *float64 `json:"luas_m2"`
	NilaiAset        *float64 `json:"nilai_aset"`
	TahunPerolehan   *int     `json:"tahun_perolehan"`
	StatusHukum      *string  `json:"status_hukum"`
	StatusPenggunaan *string  `json:"status_penggunaan"`
	AlamatLokasi     *string  `json:"alamat_lokasi"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   *models.Geometry  `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// ===== Service =====

type AssetService interface {
	List(ctx context.Context) ([]AssetSummary, error)
	Detail(ctx context.Context, id int) (*models.Asset, error)
	Update(ctx context.Context, id int, in UpdateAssetInput) (*models.Asset, error)
	Remove(ctx context.Context, id int) error
	CreatePoint(ctx context.Context, in CreatePointInput) (*models.Asset, error)
	CreatePolygon(ctx context.Context, in CreatePolygonInput) (*models.Asset, error)
	GeoJSON(ctx context.Context) (*FeatureCollection, error)
}

type assetService struct {
	repo repository.AssetRepository
}

func NewAssetService(repo repository.AssetRepository) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) List(ctx context.Context) ([]AssetSummary, error) {
	assets, err := s.repo.FindAllOrdered(ctx, listLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]AssetSummary, 0, len(assets))
	for _, a := range assets {
		var geomType *string
		if a.Geometry != nil && a.Geometry.Type != "" {
			t := string(a.Geometry.Type)
			geomType = &t
		}
		rows = append(rows, AssetSummary{
			ID:               a.ID,
			KodeAset:         a.KodeAset,
			NamaAset:         a.NamaAset,
			LuasM2:           a.LuasM2,
			NilaiAset:        a.NilaiAset,
			TahunPerolehan:   a.TahunPerolehan,
			StatusHukum:      a.StatusHukum,
			StatusPenggunaan: a.StatusPenggunaan,
			AlamatLokasi:     a.AlamatLokasi,
			UpdatedAt:        a.UpdatedAt,
			GeometryType:     geomType,
		})
	}
	return rows, nil
}

func (s *assetService) Detail(ctx context.Context, id int) (*models.Asset, error) {
	assetID, err := validateID(id)
	if err != nil {
		return nil, err
	}

	asset, err := s.repo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset tidak ditemukan", models.ErrNotFound)
	}
	return asset, nil
}

func (s *assetService) Update(ctx context.Context, id int, in UpdateAssetInput) (*models.Asset, error) {
	asset, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyUpdate(ctx, asset, in); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// applyUpdate menerapkan payload parsial field demi field atas himpunan
// atribut yang tetap. Field di luar himpunan ini tidak akan pernah tertulis.
func (s *assetService) applyUpdate(ctx context.Context, asset *models.Asset, in UpdateAssetInput) error {
	if in.KodeAset != nil {
		if len(*in.KodeAset) < 3 {
			return fmt.Errorf("%w: kode_aset minimal 3 karakter", models.ErrInvalidArgument)
		}
		if *in.KodeAset != asset.KodeAset {
			exist, err := s.repo.FindByKode(ctx, *in.KodeAset)
			if err != nil {
				return err
			}
			if exist != nil {
				return fmt.Errorf("%w: kode_aset sudah digunakan", models.ErrInvalidArgument)
			}
		}
		asset.KodeAset = *in.KodeAset
	}
	if in.NamaAset != nil {
		if len(*in.NamaAset) < 3 {
			return fmt.Errorf("%w: nama_aset minimal 3 karakter", models.ErrInvalidArgument)
		}
		asset.NamaAset = *in.NamaAset
	}
	if in.LuasM2 != nil {
		if *in.LuasM2 < 0 {
			return fmt.Errorf("%w: luas_m2 tidak boleh negatif", models.ErrInvalidArgument)
		}
		asset.LuasM2 = in.LuasM2
	}
	if in.NilaiAset != nil {
		if *in.NilaiAset < 0 {
			return fmt.Errorf("%w: nilai_aset tidak boleh negatif", models.ErrInvalidArgument)
		}
		asset.NilaiAset = in.NilaiAset
	}
	if in.TahunPerolehan != nil {
		if *in.TahunPerolehan < 1000 || *in.TahunPerolehan > 9999 {
			return fmt.Errorf("%w: tahun_perolehan tidak valid", models.ErrInvalidArgument)
		}
		asset.TahunPerolehan = in.TahunPerolehan
	}
	if in.StatusHukum != nil {
		asset.StatusHukum = in.StatusHukum
	}
	if in.StatusPenggunaan != nil {
		if *in.StatusPenggunaan == "" {
			asset.StatusPenggunaan = nil
		} else {
			if !models.ValidStatusPenggunaan(*in.StatusPenggunaan) {
				return fmt.Errorf("%w: status_penggunaan tidak dikenal", models.ErrInvalidArgument)
			}
			asset.StatusPenggunaan = in.StatusPenggunaan
		}
	}
	if in.AlamatLokasi != nil {
		asset.AlamatLokasi = in.AlamatLokasi
	}
	return nil
}

func (s *assetService) Remove(ctx context.Context, id int) error {
	assetID, err := validateID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, assetID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: asset tidak ditemukan", models.ErrNotFound)
	}
	return nil
}

func (s *assetService) CreatePoint(ctx context.Context, in CreatePointInput) (*models.Asset, error) {
	if err := s.validateCreate(ctx, in.KodeAset, in.NamaAset); err != nil {
		return nil, err
	}

	geom := models.NewPoint(in.Lat, in.Lng)
	asset := &models.Asset{
		KodeAset:     in.KodeAset,
		NamaAset:     in.NamaAset,
		AlamatLokasi: in.AlamatLokasi,
		Geometry:     &geom,
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) CreatePolygon(ctx context.Context, in CreatePolygonInput) (*models.Asset, error) {
	if err := s.validateCreate(ctx, in.KodeAset, in.NamaAset); err != nil {
		return nil, err
	}

	geom, err := models.NewPolygon(in.Coordinates)
	if err != nil {
		return nil, err
	}

	asset := &models.Asset{
		KodeAset:     in.KodeAset,
		NamaAset:     in.NamaAset,
		AlamatLokasi: in.AlamatLokasi,
		Geometry:     &geom,
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) GeoJSON(ctx context.Context) (*FeatureCollection, error) {
	assets, err := s.repo.FindAllWithGeometry(ctx)
	if err != nil {
		return nil, err
	}

	features := make([]Feature, 0, len(assets))
	for _, a := range assets {
		if a.Geometry == nil || a.Geometry.Type == "" {
			continue
		}
		features = append(features, Feature{
			Type:     "Feature",
			Geometry: a.Geometry,
			Properties: FeatureProperties{
				ID:               a.ID,
				KodeAset:         a.KodeAset,
				NamaAset:         a.NamaAset,
				LuasM2:           a.LuasM2,
				NilaiAset:        a.NilaiAset,
				TahunPerolehan:   a.TahunPerolehan,
				StatusHukum:      a.StatusHukum,
				StatusPenggunaan: a.StatusPenggunaan,
				AlamatLokasi:     a.AlamatLokasi,
			},
		})
	}

	return &FeatureCollection{Type: "FeatureCollection", Features: features}, nil
}

func (s *assetService) validateCreate(ctx context.Context, kodeAset, namaAset string) error {
	if len(kodeAset) < 3 {
		return fmt.Errorf("%w: kode_aset minimal 3 karakter", models.ErrInvalidArgument)
	}
	if len(namaAset) < 3 {
		return fmt.Errorf("%w: nama_aset minimal 3 karakter", models.ErrInvalidArgument)
	}

	exist, err := s.repo.FindByKode(ctx, kodeAset)
	if err != nil {
		return err
	}
	if exist != nil {
		return fmt.Errorf("%w: kode_aset sudah digunakan", models.ErrInvalidArgument)
	}
	return nil
}

func validateID(id int) (uint, error) {
	if id <= 0 {
		return 0, fmt.Errorf("%w: ID tidak valid", models.ErrInvalidArgument)
	}
	return uint(id), nil
}
