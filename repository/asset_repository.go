package repository

import (
	"context"
	"errors"

	"github.com/azzami13/Mapasset/models"

	"gorm.io/gorm"
)

// AssetRepository adalah port persistensi aset. Setiap pemanggilan bersifat
// transaksional sendiri; engine tidak pernah merentang satu operasi tulis ke
// lebih dari satu pemanggilan.
type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) error
	FindByID(ctx context.Context, id uint) (*models.Asset, error)
	FindByKode(ctx context.Context, kodeAset string) (*models.Asset, error)
	// FindAllOrdered mengembalikan maksimal limit aset, updated_at terbaru dulu.
	FindAllOrdered(ctx context.Context, limit int) ([]models.Asset, error)
	// FindAllWithGeometry hanya mengembalikan aset yang punya geometry.
	FindAllWithGeometry(ctx context.Context) ([]models.Asset, error)
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type assetRepository struct{ db *gorm.DB }

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *assetRepository) FindByID(ctx context.Context, id uint) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).First(&asset, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) FindByKode(ctx context.Context, kodeAset string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).Where("kode_aset = ?", kodeAset).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) FindAllOrdered(ctx context.Context, limit int) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepository) FindAllWithGeometry(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.WithContext(ctx).
		Where("geometry IS NOT NULL").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *models.Asset) error {
	// Save menulis seluruh kolom sehingga updated_at selalu ikut tersegarkan.
	return r.db.WithContext(ctx).Save(asset).Error
}

func (r *assetRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Asset{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
