package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autohaus/dealership/internal/core/domain"
)

// AccountRepository stores users and admins in separate collections. Emails
// are stored lower-cased so the unique index is case-insensitive.
type AccountRepository struct {
	users  *mongo.Collection
	admins *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		users:  db.Collection(collectionUsers),
		admins: db.Collection(collectionAdmins),
	}
}

type accountDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	Name         string    `bson:"name"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d *accountDoc) toDomain(role domain.Role) *domain.Account {
	return &domain.Account{
		ID:           d.ID,
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Role:         role,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *AccountRepository) coll(role domain.Role) (*mongo.Collection, error) {
	switch role {
	case domain.RoleUser:
		return r.users, nil
	case domain.RoleAdmin:
		return r.admins, nil
	}
	return nil, domain.Validation("unknown role %q", role)
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	col, err := r.coll(account.Role)
	if err != nil {
		return nil, err
	}
	doc := accountDoc{
		ID:           newID(),
		Email:        domain.NormalizeEmail(account.Email),
		Name:         account.Name,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
	if err := insertOne(ctx, col, doc, domain.ErrAccountExists); err != nil {
		return nil, err
	}
	return doc.toDomain(account.Role), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, role domain.Role, email string) (*domain.Account, error) {
	col, err := r.coll(role)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[accountDoc](ctx, col, bson.M{"email": domain.NormalizeEmail(email)}, domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(role), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, role domain.Role, id string) (*domain.Account, error) {
	col, err := r.coll(role)
	if err != nil {
		return nil, err
	}
	doc, err := findOne[accountDoc](ctx, col, byID(id), domain.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(role), nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, role domain.Role, id, passwordHash string) error {
	col, err := r.coll(role)
	if err != nil {
		return err
	}
	return setFields(ctx, col, id, bson.D{
		{Key: "password_hash", Value: passwordHash},
		{Key: "updated_at", Value: time.Now().UTC()},
	}, domain.ErrAccountNotFound)
}

func (r *AccountRepository) Delete(ctx context.Context, role domain.Role, id string) error {
	col, err := r.coll(role)
	if err != nil {
		return err
	}
	return deleteByID(ctx, col, id, domain.ErrAccountNotFound)
}

func (r *AccountRepository) List(ctx context.Context, role domain.Role) ([]*domain.Account, error) {
	col, err := r.coll(role)
	if err != nil {
		return nil, err
	}
	docs, err := findMany[accountDoc](ctx, col, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Account, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain(role)
	}
	return out, nil
}
