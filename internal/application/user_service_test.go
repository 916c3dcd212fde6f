package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/adoption-tracker/internal/api/middleware"
	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo, *mock.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	config.AdminUsername = "admin"
	mockUser := mock.NewMockUserRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{
		User:  mockUser,
		Audit: mockAudit,
	}
	svc := NewUserService(repos)
	return svc, mockUser, mockAudit
}

func rolePtr(r user.Role) *user.Role {
	return &r
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser, mockAudit := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByName(gomock.Any(), "alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
		assert.NotEqual(t, "123456", u.Password)
		u.ID = 3
		return nil
	})
	mockAudit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Return(nil)

	usr, err := svc.RegisterUser(context.Background(), testActor, user.CreateUserInput{Name: "alice", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), usr.ID)
	assert.Equal(t, user.RoleRegular, usr.Role)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByName(gomock.Any(), "admin").Return(user.User{ID: 1}, nil)

	_, err := svc.RegisterUser(context.Background(), testActor, user.CreateUserInput{Name: "admin", Password: "123456"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 1, Name: "bob", Password: string(hashed), Role: user.RoleAdmin}
	mockUser.EXPECT().GetUserByName(gomock.Any(), "bob").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u user.User, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser(context.Background(), "bob", "123456")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Name)
	assert.Equal(t, "token123", token)
	assert.True(t, u.IsAdmin())
}

func TestLoginUser_WrongPassword(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByName(gomock.Any(), "bob").Return(user.User{ID: 1, Name: "bob", Password: string(hashed)}, nil)

	_, _, err := svc.LoginUser(context.Background(), "bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByName(gomock.Any(), "ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- UpdateUser ---------------------
func TestUpdateUser_CannotDowngradeReservedAdmin(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(gomock.Any(), uint(1)).Return(user.User{ID: 1, Name: "admin", Role: user.RoleAdmin}, nil)

	_, err := svc.UpdateUser(context.Background(), testActor, 1, user.UpdateUserInput{Role: rolePtr(user.RoleRegular)})
	assert.ErrorIs(t, err, ErrReservedAdminUser)
}

func TestUpdateUser_ChangesRole(t *testing.T) {
	svc, mockUser, mockAudit := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(gomock.Any(), uint(2)).Return(user.User{ID: 2, Name: "operator1", Role: user.RoleRegular}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Return(nil)

	usr, err := svc.UpdateUser(context.Background(), testActor, 2, user.UpdateUserInput{Role: rolePtr(user.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, usr.Role)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(gomock.Any(), uint(8)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateUser(context.Background(), testActor, 8, user.UpdateUserInput{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --------------------- RemoveUser ---------------------
func TestRemoveUser_ReservedAdmin(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(gomock.Any(), uint(1)).Return(user.User{ID: 1, Name: "admin"}, nil)

	assert.ErrorIs(t, svc.RemoveUser(context.Background(), testActor, 1), ErrReservedAdminUser)
}

func TestRemoveUser_Success(t *testing.T) {
	svc, mockUser, mockAudit := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(gomock.Any(), uint(4)).Return(user.User{ID: 4, Name: "temp"}, nil)
	mockUser.EXPECT().DeleteUser(gomock.Any(), uint(4)).Return(nil)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, svc.RemoveUser(context.Background(), testActor, 4))
}

func TestRemoveUser_StillResponsibleForAnimals(t *testing.T) {
	svc, mockUser, _ := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(gomock.Any(), uint(4)).Return(user.User{ID: 4, Name: "temp"}, nil)
	mockUser.EXPECT().DeleteUser(gomock.Any(), uint(4)).Return(gorm.ErrForeignKeyViolated)

	assert.ErrorIs(t, svc.RemoveUser(context.Background(), testActor, 4), ErrUserHasAnimals)
}

// --------------------- EnsureAdmin ---------------------
func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	fx := setupFixture(t)
	ctx := context.Background()
	config.AdminUsername = "admin"
	config.AdminPassword = "admin123"

	require.NoError(t, fx.svc.User.EnsureAdmin(ctx))
	require.NoError(t, fx.svc.User.EnsureAdmin(ctx))

	users, err := fx.svc.User.ListUsers(ctx)
	require.NoError(t, err)
	var admins int
	for _, u := range users {
		if u.Name == "admin" {
			admins++
			assert.True(t, u.IsAdmin())
		}
	}
	assert.Equal(t, 1, admins)
}
