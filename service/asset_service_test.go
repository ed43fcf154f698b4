package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/azzami13/Mapasset/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssetRepo meniru kontrak repository: setiap Create/Update menyegarkan
// updated_at, Delete mengembalikan false kalau id tidak ada.
type fakeAssetRepo struct {
	nextID uint
	assets map[uint]models.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: map[uint]models.Asset{}}
}

func (f *fakeAssetRepo) Create(_ context.Context, asset *models.Asset) error {
	f.nextID++
	asset.ID = f.nextID
	asset.UpdatedAt = time.Now()
	f.assets[asset.ID] = *asset
	return nil
}

func (f *fakeAssetRepo) FindByID(_ context.Context, id uint) (*models.Asset, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, nil
	}
	cp := a
	return &cp, nil
}

func (f *fakeAssetRepo) FindByKode(_ context.Context, kodeAset string) (*models.Asset, error) {
	for _, a := range f.assets {
		if a.KodeAset == kodeAset {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAssetRepo) FindAllOrdered(_ context.Context, limit int) ([]models.Asset, error) {
	all := make([]models.Asset, 0, len(f.assets))
	for _, a := range f.assets {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeAssetRepo) FindAllWithGeometry(_ context.Context) ([]models.Asset, error) {
	var out []models.Asset
	for _, a := range f.assets {
		if a.Geometry != nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) Update(_ context.Context, asset *models.Asset) error {
	asset.UpdatedAt = time.Now()
	f.assets[asset.ID] = *asset
	return nil
}

func (f *fakeAssetRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := f.assets[id]; !ok {
		return false, nil
	}
	delete(f.assets, id)
	return true, nil
}

func strPtr(s string) *string { return &s }

func TestCreatePointStoresLngLat(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	asset, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-001",
		NamaAset: "Lapangan Desa",
		Lat:      -6.87,
		Lng:      107.54,
	})
	require.NoError(t, err)

	require.NotNil(t, asset.Geometry)
	assert.Equal(t, models.GeometryPoint, asset.Geometry.Type)
	assert.Equal(t, [2]float64{107.54, -6.87}, asset.Geometry.Point)
}

func TestCreatePolygonClosesRing(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	asset, err := svc.CreatePolygon(context.Background(), CreatePolygonInput{
		KodeAset: "AST-002",
		NamaAset: "Tanah Kas Desa",
		Coordinates: [][2]float64{
			{107.54, -6.87},
			{107.55, -6.87},
			{107.55, -6.88},
			{107.54, -6.88},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, asset.Geometry)
	require.Len(t, asset.Geometry.Ring, 5)
	assert.Equal(t, [2]float64{107.54, -6.87}, asset.Geometry.Ring[4])
}

func TestCreatePolygonTooFewPointsNothingPersisted(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	_, err := svc.CreatePolygon(context.Background(), CreatePolygonInput{
		KodeAset: "AST-003",
		NamaAset: "Tanah Sengketa",
		Coordinates: [][2]float64{
			{107.54, -6.87},
			{107.55, -6.87},
			{107.55, -6.88},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidGeometry)
	assert.Empty(t, repo.assets)
}

func TestCreateRejectsShortFields(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	_, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "A1",
		NamaAset: "Lapangan",
		Lat:      0, Lng: 0,
	})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-004",
		NamaAset: "LP",
		Lat:      0, Lng: 0,
	})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestCreateRejectsDuplicateKode(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	_, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-005", NamaAset: "Kantor Desa", Lat: -6.9, Lng: 107.6,
	})
	require.NoError(t, err)

	_, err = svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-005", NamaAset: "Kantor Lain", Lat: -6.9, Lng: 107.6,
	})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestDetailInvalidID(t *testing.T) {
	svc := NewAssetService(newFakeAssetRepo())

	for _, id := range []int{0, -5} {
		_, err := svc.Detail(context.Background(), id)
		assert.ErrorIs(t, err, models.ErrInvalidArgument, "id %d", id)
	}
}

func TestDetailNotFound(t *testing.T) {
	svc := NewAssetService(newFakeAssetRepo())

	_, err := svc.Detail(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateEmptyPartialRefreshesUpdatedAt(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	asset, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-006", NamaAset: "Balai Desa", Lat: -6.9, Lng: 107.6,
	})
	require.NoError(t, err)

	// mundurkan updated_at tersimpan supaya penyegaran terlihat
	stale := repo.assets[asset.ID]
	stale.UpdatedAt = time.Now().Add(-time.Hour)
	repo.assets[asset.ID] = stale

	updated, err := svc.Update(context.Background(), int(asset.ID), UpdateAssetInput{})
	require.NoError(t, err)

	assert.Equal(t, stale.KodeAset, updated.KodeAset)
	assert.Equal(t, stale.NamaAset, updated.NamaAset)
	assert.True(t, updated.UpdatedAt.After(stale.UpdatedAt))
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	alamat := "Jl. Raya No. 1"
	asset, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-007", NamaAset: "Pasar Desa", Lat: -6.9, Lng: 107.6,
		AlamatLokasi: &alamat,
	})
	require.NoError(t, err)

	luas := 1250.5
	updated, err := svc.Update(context.Background(), int(asset.ID), UpdateAssetInput{
		NamaAset: strPtr("Pasar Desa Baru"),
		LuasM2:   &luas,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pasar Desa Baru", updated.NamaAset)
	require.NotNil(t, updated.LuasM2)
	assert.Equal(t, 1250.5, *updated.LuasM2)
	// field yang tidak dikirim tetap
	assert.Equal(t, "AST-007", updated.KodeAset)
	require.NotNil(t, updated.AlamatLokasi)
	assert.Equal(t, alamat, *updated.AlamatLokasi)
	// geometry tidak tersentuh lewat jalur update
	require.NotNil(t, updated.Geometry)
	assert.Equal(t, models.GeometryPoint, updated.Geometry.Type)
}

func TestUpdateValidatesFields(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	asset, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-008", NamaAset: "Gudang Desa", Lat: -6.9, Lng: 107.6,
	})
	require.NoError(t, err)

	neg := -1.0
	badTahun := 99
	cases := []UpdateAssetInput{
		{KodeAset: strPtr("A")},
		{NamaAset: strPtr("B")},
		{LuasM2: &neg},
		{NilaiAset: &neg},
		{TahunPerolehan: &badTahun},
		{StatusPenggunaan: strPtr("Dipinjam")},
	}
	for i, in := range cases {
		_, err := svc.Update(context.Background(), int(asset.ID), in)
		assert.ErrorIs(t, err, models.ErrInvalidArgument, "case %d", i)
	}
}

func TestUpdateStatusPenggunaan(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	asset, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-009", NamaAset: "Tanah Bengkok", Lat: -6.9, Lng: 107.6,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), int(asset.ID), UpdateAssetInput{
		StatusPenggunaan: strPtr(models.StatusIdle),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.StatusPenggunaan)
	assert.Equal(t, models.StatusIdle, *updated.StatusPenggunaan)

	// string kosong mengosongkan status
	updated, err = svc.Update(context.Background(), int(asset.ID), UpdateAssetInput{
		StatusPenggunaan: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.StatusPenggunaan)
}

func TestRemoveThenDetailNotFound(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	asset, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-010", NamaAset: "Poskamling", Lat: -6.9, Lng: 107.6,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), int(asset.ID)))

	_, err = svc.Detail(context.Background(), int(asset.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)

	// remove kedua tidak idempoten
	err = svc.Remove(context.Background(), int(asset.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListCapsAt200NewestFirst(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	base := time.Now().Add(-300 * time.Minute)
	for i := 1; i <= 250; i++ {
		id := uint(i)
		repo.assets[id] = models.Asset{
			ID:        id,
			KodeAset:  fmt.Sprintf("AST-%03d", i),
			NamaAset:  fmt.Sprintf("Aset %d", i),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	repo.nextID = 250

	rows, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 200)
	assert.Equal(t, "AST-250", rows[0].KodeAset)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].UpdatedAt.After(rows[i-1].UpdatedAt),
			"list tidak terurut updated_at desc pada index %d", i)
	}
}

func TestListSummaryGeometryType(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	_, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-011", NamaAset: "Titik Saja", Lat: -6.9, Lng: 107.6,
	})
	require.NoError(t, err)

	repo.assets[99] = models.Asset{
		ID: 99, KodeAset: "AST-099", NamaAset: "Tanpa Geometry",
		UpdatedAt: time.Now().Add(-time.Minute),
	}

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].GeometryType)
	assert.Equal(t, "Point", *rows[0].GeometryType)
	assert.Nil(t, rows[1].GeometryType)
}

func TestGeoJSONSkipsAssetsWithoutGeometry(t *testing.T) {
	repo := newFakeAssetRepo()
	svc := NewAssetService(repo)

	_, err := svc.CreatePoint(context.Background(), CreatePointInput{
		KodeAset: "AST-012", NamaAset: "Menara Air", Lat: -6.87, Lng: 107.54,
	})
	require.NoError(t, err)

	repo.assets[77] = models.Asset{
		ID: 77, KodeAset: "AST-077", NamaAset: "Tanpa Geometry",
		UpdatedAt: time.Now(),
	}

	fc, err := svc.GeoJSON(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)

	feat := fc.Features[0]
	assert.Equal(t, "Feature", feat.Type)
	assert.Equal(t, "AST-012", feat.Properties.KodeAset)
	require.NotNil(t, feat.Geometry)
	assert.Equal(t, [2]float64{107.54, -6.87}, feat.Geometry.Point)
}
