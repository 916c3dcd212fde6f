package application

import (
	"context"
	"errors"
	"strconv"

	"github.com/linskybing/adoption-tracker/internal/api/middleware"
	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already registered")
	ErrReservedAdminUser   = errors.New("cannot delete or downgrade the reserved admin user")
	ErrUserHasAnimals      = errors.New("user is responsible for animals")
)

type UserService struct {
	Repos *repository.Repos
	deps  *deps
}

func NewUserService(repos *repository.Repos, opts ...Option) *UserService {
	return newUserService(repos, newDeps(opts))
}

func newUserService(repos *repository.Repos, d *deps) *UserService {
	return &UserService{Repos: repos, deps: d}
}

func userResourceID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (s *UserService) RegisterUser(ctx context.Context, actor audit.Actor, input user.CreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByName(ctx, input.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, storeErr("get user", err)
	}
	if err == nil {
		return user.User{}, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Name:     input.Name,
		Password: string(hashed),
		Role:     user.RoleRegular,
	}
	if input.Role != nil {
		usr.Role = *input.Role
	}

	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.User.SaveUser(ctx, &usr); err != nil {
			return storeErr("save user", err)
		}
		return storeErr("write audit log", utils.LogAudit(ctx, tx.Audit, actor, audit.ActionCreate,
			audit.ResourceUser, userResourceID(usr.ID), nil, usr, "user registered"))
	})
	if err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// LoginUser checks the credentials and returns the user with a fresh access token.
func (s *UserService) LoginUser(ctx context.Context, name, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", storeErr("get user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr, config.AccessTokenExpire)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]user.User, error) {
	users, err := s.Repos.User.ListUsers(ctx)
	return users, storeErr("list users", err)
}

func (s *UserService) FindUserByID(ctx context.Context, id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, storeErr("get user", err)
	}
	return usr, nil
}

func (s *UserService) UpdateUser(ctx context.Context, actor audit.Actor, id uint, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.FindUserByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	before := usr

	if usr.Name == config.AdminUsername && input.Role != nil && *input.Role != user.RoleAdmin {
		return user.User{}, ErrReservedAdminUser
	}

	if input.Name != nil && *input.Name != usr.Name {
		if usr.Name == config.AdminUsername {
			return user.User{}, ErrReservedAdminUser
		}
		_, err := s.Repos.User.GetUserByName(ctx, *input.Name)
		if err == nil {
			return user.User{}, ErrUsernameTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, storeErr("get user", err)
		}
		usr.Name = *input.Name
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}
	if input.Role != nil {
		usr.Role = *input.Role
	}

	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.User.SaveUser(ctx, &usr); err != nil {
			return storeErr("save user", err)
		}
		return storeErr("write audit log", utils.LogAudit(ctx, tx.Audit, actor, audit.ActionUpdate,
			audit.ResourceUser, userResourceID(usr.ID), before, usr, "user updated"))
	})
	if err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) RemoveUser(ctx context.Context, actor audit.Actor, id uint) error {
	usr, err := s.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if usr.Name == config.AdminUsername {
		return ErrReservedAdminUser
	}

	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.User.DeleteUser(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrUserHasAnimals
			}
			return storeErr("delete user", err)
		}
		return storeErr("write audit log", utils.LogAudit(ctx, tx.Audit, actor, audit.ActionDelete,
			audit.ResourceUser, userResourceID(id), usr, nil, "user deleted"))
	})
}

// EnsureAdmin creates the reserved admin account when it does not exist yet.
func (s *UserService) EnsureAdmin(ctx context.Context) error {
	_, err := s.Repos.User.GetUserByName(ctx, config.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return storeErr("get user", err)
	}

	role := user.RoleAdmin
	_, err = s.RegisterUser(ctx, audit.SystemActor, user.CreateUserInput{
		Name:     config.AdminUsername,
		Password: config.AdminPassword,
		Role:     &role,
	})
	if err == nil {
		s.deps.logger.Info("reserved admin user created", "name", config.AdminUsername)
	}
	return err
}
