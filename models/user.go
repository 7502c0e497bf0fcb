package models

import (
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/google/uuid"
)

type User struct {
	ID          int       `gorm:"primary_key" json:"id"`
	WorkspaceId string    `gorm:"index" json:"workspace_id"`
	Username    string    `gorm:"size:100;not null;unique" json:"username" binding:"required"`
	Name        string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email       *string   `gorm:"size:100;unique" json:"email"`
	Phone       string    `gorm:"size:20" json:"phone"`
	Password    string    `gorm:"size:255;not null" json:"password"`
	IsActive    *bool     `gorm:"not null" json:"is_active"`
	Role        UserRole  `gorm:"type:enum('A', 'V');default:V" json:"role"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	WorkspaceId string   `json:"workspace_id"`
	Username    string   `json:"username" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Password    string   `json:"password" binding:"required"`
	IsActive    *bool    `json:"is_active" binding:"required"`
	Role        UserRole `json:"role" binding:"required"`
}

/*
caches:
	User:$username
	Token:$token        -> username
	Tokens:$username    -> set of live tokens
*/

func (user User) RemoveInstanceRedis() error {
	return config.RemoveRedisKey("User:" + user.Username)
}

type LoginInfo struct {
	Token       string `json:"token"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	WorkspaceId string `json:"workspace_id"`
}

func (result *User) PrepareGive() {
	result.Password = ""
}

// destroy current session
func Logout(ctx context.Context) (bool, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false, errors.New("token is required")
	}
	err := config.RemoveRedisKey("Token:" + fmt.Sprint(token))
	if err != nil {
		return false, nil
	}
	// remove current token from tokens list
	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok || username == "" {
		return false, errors.New("user not found")
	}
	if err := config.RemoveRedisSetMember("Tokens:"+username, token); err != nil {
		return false, err
	}
	return true, nil
}

func Login(ctx context.Context, username string, password string) (*LoginInfo, error) {

	db := config.GetDB()
	var err error
	var result LoginInfo

	user := User{}

	// get User info
	exists, err := config.GetRedisObject("User:"+username, &user)
	if err != nil {
		return &result, err
	}
	if !exists {
		err = db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Take(&user).Error
		if err != nil {
			return &result, errors.New("invalid username or password")
		}
	}

	// check login credentials; any compare failure (mismatch or a
	// malformed stored hash) rejects the login
	err = utils.ComparePassword(user.Password, password)
	if err != nil {
		return &result, errors.New("invalid username or password")
	}

	isActive := user.IsActive != nil && *user.IsActive
	if !isActive {
		return &result, errors.New("user is disabled")
	}

	// generate token & response
	token := uuid.New()
	result.Token = token.String()
	result.Name = user.Name
	result.WorkspaceId = user.WorkspaceId
	if user.Role == UserRoleAdmin {
		result.Role = "Admin"
	} else {
		result.Role = "Vendedor"
	}

	// store token in redis
	tokenLifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
	if err != nil {
		tokenLifespan = 24
	}

	// add new token to the user's tokens set
	if err := config.AddRedisSet("Tokens:"+user.Username, token.String()); err != nil {
		return nil, err
	}
	if err := config.SetRedisValue("Token:"+token.String(), user.Username, time.Duration(tokenLifespan)*time.Hour); err != nil {
		return &result, err
	}

	return &result, nil
}

// GetUserByUsername is used by the session middleware to resolve the
// workspace of an authenticated request. The cache entry lives under
// the same key Login reads.
func GetUserByUsername(ctx context.Context, username string) (*User, error) {

	var user User
	exists, err := config.GetRedisObject("User:"+username, &user)
	if err != nil {
		return nil, err
	}
	if !exists {
		db := config.GetDB()
		err = db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Take(&user).Error
		if err != nil {
			return nil, utils.ErrorRecordNotFound
		}
		if err := config.SetRedisObject("User:"+username, &user, time.Hour); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

func GetAllUsers(ctx context.Context) ([]*User, error) {

	db := config.GetDB()
	var results []*User

	if err := db.WithContext(ctx).Find(&results).Error; err != nil {
		return results, errors.New("no user")
	}

	for i, u := range results {
		u.Password = ""
		results[i] = u
	}

	return results, nil
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {

	db := config.GetDB()
	var count int64

	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return &User{}, errors.New("invalid email address")
	}

	err := db.WithContext(ctx).Model(&User{}).Where("username = ?", input.Username).Or("email = ?", input.Email).Count(&count).Error
	if err != nil {
		return &User{}, err
	}
	if count > 0 {
		return &User{}, errors.New("duplicate username or email")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return &User{}, err
	}
	input.Email = strings.ToLower(input.Email)

	user := User{
		Username:    html.EscapeString(strings.TrimSpace(input.Username)),
		WorkspaceId: input.WorkspaceId,
		Name:        input.Name,
		Email:       utils.NilIfEmpty(input.Email),
		Phone:       input.Phone,
		Password:    string(hashedPassword),
		IsActive:    input.IsActive,
		Role:        input.Role,
	}

	err = db.WithContext(ctx).Create(&user).Error
	if err != nil {
		return &User{}, err
	}
	user.Password = ""
	return &user, nil
}

func GetUser(ctx context.Context, id int) (*User, error) {

	result, err := utils.FetchSingleModel[User](ctx, id)
	if err != nil {
		return nil, err
	}

	result.PrepareGive()

	return result, nil
}

func (user *User) DestroyAllSessions(ctx context.Context) error {
	allTokens, err := config.GetRedisSetMembers("Tokens:" + user.Username)
	if err != nil {
		return err
	}
	for _, token := range allTokens {
		if err := config.RemoveRedisKey("Token:" + token); err != nil {
			return err
		}
	}
	if err := config.RemoveRedisKey("Tokens:" + user.Username); err != nil {
		return err
	}

	return nil
}

func ChangePassword(ctx context.Context, oldPassword string, newPassword string) (*User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, errors.New("user id is required")
	}

	var user User
	db := config.GetDB()
	if err := db.WithContext(ctx).First(&user, userId).Error; err != nil {
		return nil, err
	}
	// check oldPassword
	if err := utils.ComparePassword(user.Password, oldPassword); err != nil {
		return nil, errors.New("old password is wrong")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	newPassword = string(hashedPassword)

	tx := db.Begin()
	if err := tx.WithContext(ctx).Model(&user).UpdateColumn("password", newPassword).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := config.RemoveRedisKey("User:" + user.Username); err != nil {
		tx.Rollback()
		return nil, err
	}

	// destroying all session tokens
	if err := user.DestroyAllSessions(ctx); err != nil {
		tx.Rollback()
		return nil, err
	}

	return &user, tx.Commit().Error
}
