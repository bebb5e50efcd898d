package storage

import (
	"time"

	"gorm.io/datatypes"
)

// LocalStorageItem is one key of the visitor's durable storage (cart, favorites).
type LocalStorageItem struct {
	Key       string         `gorm:"column:storage_key;primaryKey;type:varchar(191)" json:"key"`
	Value     datatypes.JSON `gorm:"column:value" json:"value"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LocalStorageItem) TableName() string {
	return "storefront_local_storage"
}
