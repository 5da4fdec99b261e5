package model

import "github.com/google/uuid"

// RecognitionResult is returned to the device for every processed image.
type RecognitionResult struct {
	Plate   string `json:"plate"`
	Allowed bool   `json:"allowed"`
	Raw     string `json:"raw"`
}

// AllowedPlate rows are maintained by operators directly in the database;
// the service only reads plate_number.
type AllowedPlate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PlateNumber string    `gorm:"type:varchar(32);uniqueIndex;not null"`
}

func (AllowedPlate) TableName() string {
	return "allowed_plates"
}
