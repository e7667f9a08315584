package postgres

import (
	"strings"

	"github.com/amsf/project-tracker/internal/auth"
	userDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/user"
	"gorm.io/gorm"
)

// AuthRepository implements auth.RepositoryAPI using GORM.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.RepositoryAPI {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetByEmail(email string) (*auth.User, string, error) {
	var u userDatamodel.User
	err := r.db.Where("email = ? AND is_active = ?", email, true).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", auth.ErrUserNotFound
		}
		return nil, "", err
	}
	return toDomain(&u), u.PasswordHash, nil
}

func (r *AuthRepository) GetByID(id int64) (*auth.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return toDomain(&u), nil
}

func toDomain(u *userDatamodel.User) *auth.User {
	return &auth.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		PartnerID:   u.PartnerID,
		Permissions: splitPermissions(u.Permissions),
	}
}

// permissions are stored as a comma separated list
func splitPermissions(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	perms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			perms = append(perms, p)
		}
	}
	return perms
}
