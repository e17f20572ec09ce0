package domain

const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

type User struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Email          string  `db:"email" json:"email"`
	ExternalID     string  `db:"external_id" json:"external_id"`
	HashedPassword string  `db:"hashed_password" json:"hashed_password"`
	Provider       string  `db:"provider" json:"provider"`
	Phone          *string `db:"phone" json:"phone,omitempty"`
	ImageURL       *string `db:"image_url" json:"image_url,omitempty"`
	CreatedAt      int64   `db:"created_at" json:"created_at"`
	UpdatedAt      int64   `db:"updated_at" json:"updated_at"`
	DeletedAt      *int64  `db:"deleted_at" json:"deleted_at,omitempty"`
}
