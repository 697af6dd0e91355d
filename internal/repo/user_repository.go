package repo

import "github.com/rogerio-castellano/backoffice-analytics/internal/models"

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
	UpdateProfile(u models.User) (models.User, error)
}
