// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/tickworks/fuzzyclock/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// screen functions
	CreateScreen(name string, location *string, timezone string, createdBy int) (model.Screen, error)
	GetScreenByID(id int) (model.Screen, error)
	GetScreenByDeviceID(deviceID string) (model.Screen, error)
	ListScreens() ([]model.Screen, error)
	ListScreenTimezones() ([]string, error)
	UpdateScreen(id int, name, location, timezone *string) error
	DeleteScreen(id int) error
	PairScreen(id int) error
	IsScreenPairedByDeviceID(deviceID string) (bool, error)
	AssignDeviceIDToScreen(screenID int, deviceID string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}
