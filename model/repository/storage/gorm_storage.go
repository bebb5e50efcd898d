package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	storageEntity "storefront.GO/model/entity/storage"
)

// GormStorage keeps items in the storefront_local_storage table.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage migrates the storage table and returns the repository.
func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if err := db.AutoMigrate(&storageEntity.LocalStorageItem{}); err != nil {
		return nil, err
	}
	return &GormStorage{db: db}, nil
}

func (s *GormStorage) GetItem(key string) (string, bool, error) {
	var item storageEntity.LocalStorageItem
	err := s.db.Where("storage_key = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(item.Value), true, nil
}

func (s *GormStorage) SetItem(key, value string) error {
	item := storageEntity.LocalStorageItem{Key: key, Value: []byte(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

func (s *GormStorage) RemoveItem(key string) error {
	return s.db.Where("storage_key = ?", key).Delete(&storageEntity.LocalStorageItem{}).Error
}
