package models

// Person is a cached directory entry for one board member. The cache is a
// snapshot of the last successful directory fetch and serves reads when the
// directory is unreachable.
type Person struct {
	BaseModel
	BoardID    string `json:"board_id" gorm:"size:64;not null;uniqueIndex:idx_people_board_external" validate:"required,max=64"`
	ExternalID string `json:"external_id" gorm:"size:128;not null;uniqueIndex:idx_people_board_external" validate:"required,max=128"`
	Name       string `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	AvatarURL  string `json:"avatar_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	Timezone   string `json:"timezone" gorm:"size:64" validate:"max=64"`
}

// TableName specifies the table name for the Person model
func (Person) TableName() string {
	return "people"
}
