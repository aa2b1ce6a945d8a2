package domain

import "errors"

var (
	MessageSuccessAddUser    = "successfully added user to database"
	MessageSuccessGetUsers   = "successfully retrieved users"
	MessageSuccessGetUser    = "successfully retrieved user"
	MessageSuccessDeleteUser = "successfully deleted user"

	MessageFailedAddUser    = "failed to add user to database"
	MessageFailedGetUser    = "failed to retrieve user"
	MessageFailedDeleteUser = "failed to delete user"

	ErrUserNotFound     = errors.New("user not found")
	ErrCredentialsTaken = errors.New("supplied username or email is already in use")
)

type (
	AddUserRequest struct {
		Username string `query:"username" validate:"required"`
		Password string `query:"password" validate:"required"`
		Email    string `query:"email" validate:"required"`
	}

	UserResponse struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		ID       uint   `json:"id"`
	}

	UserDetailResponse struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	UsersResponse struct {
		Users []UserResponse `json:"users"`
		Count int            `json:"count"`
	}
)
