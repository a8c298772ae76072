package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// Repository is the go-pg backed Store.
type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}
	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}
	return nil
}

// --- users ---

func (r *Repository) UserByID(ctx context.Context, id string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."userId" = ?`, id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return user, nil
}

// CreateUser inserts a user, enforcing both id uniqueness and the
// (name, password) uniqueness constraint.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	taken, err := r.db.ModelContext(ctx, (*User)(nil)).
		Where(`"t"."userId" = ? OR ("t"."name" = ? AND "t"."password" = ?)`,
			user.ID, user.Name, user.Password).
		Exists()
	if err != nil {
		return fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	if taken {
		return ErrConflict
	}

	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateUser rewrites the user row. A pg unique violation on the
// (name, password) constraint surfaces as ErrConflict, matching the
// create path.
func (r *Repository) UpdateUser(ctx context.Context, user *User) error {
	res, err := r.db.ModelContext(ctx, user).
		WherePK().
		Update()
	if err != nil {
		var pgErr pg.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return ErrConflict
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.db.ModelContext(ctx, (*User)(nil)).
		Where(`"t"."userId" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) UsersCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*User)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

// --- news ---

func (r *Repository) NewsByID(ctx context.Context, id string) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."newsId" = ?`, id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

// CreateNews stores the article with its client-assigned id and date
// verbatim.
func (r *Repository) CreateNews(ctx context.Context, news *News) error {
	taken, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."newsId" = ?`, news.ID).
		Exists()
	if err != nil {
		return fmt.Errorf("failed to check news id: %w", err)
	}
	if taken {
		return ErrConflict
	}

	if _, err := r.db.ModelContext(ctx, news).Insert(); err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

func (r *Repository) UpdateNews(ctx context.Context, news *News) error {
	res, err := r.db.ModelContext(ctx, news).
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteNews(ctx context.Context, id string) error {
	res, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."newsId" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) NewsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*News)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count news: %w", err)
	}

	return count, nil
}

// --- comments ---

func (r *Repository) CommentByID(ctx context.Context, id string) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Where(`"t"."commentId" = ?`, id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query comment: %w", err)
	}

	return comment, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// --- artists and tags ---

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"t"."title" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) ArtistsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Artist)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count artists: %w", err)
	}

	return count, nil
}
