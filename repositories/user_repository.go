package repositories

import (
	"context"
	"time"

	"shophub/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := models.DB.QueryRow(
		context.Background(),
		query,
		user.Email,
		user.Password,
		user.Role,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	return err
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE email = $1`

	user := &models.User{}
	err := models.DB.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE id = $1`

	user := &models.User{}
	err := models.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) CreateProfile(profile *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, phone, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(
		context.Background(),
		query,
		profile.UserID,
		profile.FullName,
		profile.Phone,
		profile.AvatarURL,
		now,
		now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *UserRepository) GetProfile(userID int) (*models.Profile, error) {
	query := `
		SELECT id, user_id, COALESCE(full_name,''), COALESCE(phone,''), COALESCE(avatar_url,''), created_at, updated_at
		FROM profiles WHERE user_id = $1
	`

	profile := &models.Profile{}
	err := models.DB.QueryRow(context.Background(), query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Phone,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *UserRepository) UpdateProfile(profile *models.Profile) error {
	query := `
		UPDATE profiles SET full_name = $1, phone = $2, avatar_url = $3, updated_at = $4
		WHERE user_id = $5
	`
	_, err := models.DB.Exec(
		context.Background(),
		query,
		profile.FullName,
		profile.Phone,
		profile.AvatarURL,
		time.Now(),
		profile.UserID,
	)
	return err
}

func (r *UserRepository) UpdatePassword(userID int, hashedPassword string) error {
	_, err := models.DB.Exec(
		context.Background(),
		"UPDATE users SET password = $1, updated_at = $2 WHERE id = $3",
		hashedPassword,
		time.Now(),
		userID,
	)
	return err
}

func (r *UserRepository) GetUserWithProfile(userID int) (*models.UserWithProfile, error) {
	query := `
		SELECT
			u.id, u.email, u.role, u.created_at,
			COALESCE(p.full_name, '') as full_name,
			COALESCE(p.phone, '') as phone,
			COALESCE(p.avatar_url, '') as avatar_url
		FROM users u
		LEFT JOIN profiles p ON u.id = p.user_id
		WHERE u.id = $1
	`

	user := &models.UserWithProfile{}
	err := models.DB.QueryRow(context.Background(), query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.FullName,
		&user.Phone,
		&user.AvatarURL,
	)

	if err != nil {
		return nil, err
	}

	return user, nil
}
