package database

import (
	"beforeafter/models"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// GetOption returns a persisted option value.
// ok is false when the key does not exist.
func GetOption(key string) (value string, ok bool, err error) {
	if DB == nil {
		return "", false, errors.New("database not initialized")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, errors.New("empty option key")
	}

	var o models.Option
	if err := DB.First(&o, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return o.Value, true, nil
}

// SetOption persists an option value under a fixed key.
func SetOption(key, value string) error {
	if DB == nil {
		return errors.New("database not initialized")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty option key")
	}

	return DB.Save(&models.Option{Key: key, Value: value}).Error
}

// DeleteOption removes a persisted option if it exists.
func DeleteOption(key string) error {
	if DB == nil {
		return errors.New("database not initialized")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty option key")
	}

	return DB.Where("key = ?", key).Delete(&models.Option{}).Error
}

// AllOptions returns every stored option as a key→value map.
func AllOptions() (map[string]string, error) {
	if DB == nil {
		return nil, errors.New("database not initialized")
	}

	var opts []models.Option
	if err := DB.Find(&opts).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(opts))
	for _, o := range opts {
		out[o.Key] = o.Value
	}
	return out, nil
}

// CountOptions returns the number of stored options.
func CountOptions() (int64, error) {
	if DB == nil {
		return 0, errors.New("database not initialized")
	}

	var total int64
	if err := DB.Model(&models.Option{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ResetOptions drops every stored option so defaults apply again.
func ResetOptions() error {
	if DB == nil {
		return errors.New("database not initialized")
	}

	return DB.Where("1 = 1").Delete(&models.Option{}).Error
}
