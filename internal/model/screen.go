package model

import "time"

// Screen represents a clock display device in the system. Timezone is the
// IANA zone the device shows its phrase in; the ticker resolves it on every
// minute boundary, so a change takes effect at the next tick.
type Screen struct {
	ID        int       `db:"id"         json:"id"`
	DeviceID  *string   `db:"device_id"  json:"device_id"`
	Name      string    `db:"name"       json:"name"`
	Location  *string   `db:"location"   json:"location"`
	Timezone  string    `db:"timezone"   json:"timezone"`
	Paired    bool      `db:"paired"     json:"paired"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
