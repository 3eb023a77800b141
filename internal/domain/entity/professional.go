package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Professional roles visible to the search path
const (
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
)

// Subscription tiers
const (
	TierFree = "free"
	TierPro  = "pro"
)

// GeoPoint is a WGS84 coordinate. Longitude in [-180, 180], latitude in [-90, 90].
type GeoPoint struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// ServiceAreaRing is the polygon a professional draws around the region they
// serve: an ordered closed ring (first vertex repeated last, at least 4
// points). Persisted as a JSONB array of points.
type ServiceAreaRing []GeoPoint

func (r ServiceAreaRing) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *ServiceAreaRing) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	}
	return errors.New("unsupported service_area column type")
}

// Professional represents a care provider as seen by the search path.
// Profile editing and review aggregation mutate these records elsewhere;
// search only ever reads them.
type Professional struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Role             string          `gorm:"type:varchar(20);not null;index" json:"role"`
	FullName         string          `gorm:"type:varchar(255);not null" json:"full_name"`
	Specialty        string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	City             string          `gorm:"type:varchar(100);index" json:"city,omitempty"`
	IsVerified       *bool           `gorm:"not null;default:false;index" json:"is_verified"`
	SubscriptionTier string          `gorm:"type:varchar(20);not null;default:'free'" json:"subscription_tier"`
	AverageRating    *float64        `gorm:"type:double precision" json:"average_rating,omitempty"`
	ReviewCount      int             `gorm:"default:0" json:"review_count"`
	ExperienceYears  int             `gorm:"default:0" json:"experience_years"`
	ConsultationFee  decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fee"`
	ServiceArea      ServiceAreaRing `gorm:"type:jsonb" json:"service_area,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Professional) TableName() string {
	return "professionals"
}
