package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shophub/models"

	"github.com/jackc/pgx/v5"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) FindAll(ctx context.Context, category, search string, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if category != "" && category != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, category)
		argIndex++
	}
	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("title ILIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products"+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT id, title, price, image, COALESCE(cloudinary_id,''), category, created_at, updated_at FROM products%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Image, &p.CloudinaryID, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, total, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	p := &models.Product{}
	err := models.DB.QueryRow(ctx,
		"SELECT id, title, price, image, COALESCE(cloudinary_id,''), category, created_at, updated_at FROM products WHERE id=$1",
		id).Scan(&p.ID, &p.Title, &p.Price, &p.Image, &p.CloudinaryID, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	return models.DB.QueryRow(ctx,
		"INSERT INTO products (title, price, image, cloudinary_id, category, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at, updated_at",
		p.Title, p.Price, p.Image, p.CloudinaryID, p.Category, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	tag, err := models.DB.Exec(ctx,
		"UPDATE products SET title=$1, price=$2, image=$3, cloudinary_id=$4, category=$5, updated_at=$6 WHERE id=$7",
		p.Title, p.Price, p.Image, p.CloudinaryID, p.Category, time.Now(), p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, "DELETE FROM products WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
