package domain

import "time"

// Well-known platform setting keys. Values live in the platform_settings
// table and are read through the settings cache, never directly.
const (
	SettingPaystackSecretKey  = "payments.paystack.secret_key"
	SettingPaystackPublicKey  = "payments.paystack.public_key"
	SettingPlatformFeePercent = "payments.platform_fee_percent"
	SettingMaintenanceMode    = "platform.maintenance_mode"
)

type PlatformSetting struct {
	Key       string    `gorm:"primaryKey;type:varchar(120)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PlatformSetting) TableName() string { return "platform_settings" }
