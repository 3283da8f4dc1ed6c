package postgres

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"users-service/internal/domain/user"
	pkgerrors "users-service/pkg/errors"
)

// UserRepoPG implements the Repository interface using GORM.
// It runs against PostgreSQL in production and SQLite for local runs.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// Email is neither required nor unique.
type UserSchema struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"` // Unique identifier with auto-increment
	Name  string `gorm:"not null"`                 // User's name, may be empty
	Email string `gorm:"not null"`                 // User's email, may be empty
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func (m UserSchema) toDomain() user.User {
	return user.User{
		ID:    strconv.FormatInt(m.ID, 10),
		Name:  m.Name,
		Email: m.Email,
	}
}

// EnsureSchema creates the users table when it does not exist yet.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{})
}

// Create inserts a new user into the database.
func (r *UserRepoPG) Create(ctx context.Context, name, email string) (*user.User, error) {
	model := UserSchema{
		Name:  name,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err))
		return nil, pkgerrors.NewStorageError("create", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	u := model.toDomain()
	return &u, nil
}

// FindAll retrieves every user row.
func (r *UserRepoPG) FindAll(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, pkgerrors.NewStorageError("find_all", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = model.toDomain()
	}

	return users, nil
}
