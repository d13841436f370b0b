package user

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mirtechlab/mt-analytics/domains/order"
)

type User struct {
	UserID    uuid.UUID `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name      string    `gorm:"size:30" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Filter holds the optional listing filters. Nil means "not given", which
// participates in the cache key distinctly from any real value.
type Filter struct {
	Name  *string
	Email *string
	Phone *string
	Skip  int
	Limit int
}

type IUserUsecase interface {
	// List serves /users through the cache; the payload is the serialized
	// user slice, byte-identical on hit and miss.
	List(ctx context.Context, filter Filter) (json.RawMessage, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Orders(ctx context.Context, id uuid.UUID) ([]order.Order, error)
}
