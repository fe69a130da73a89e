package mongodb

import (
	"context"
	"time"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repositories.AdminRepository = (*AdminRepository)(nil)

// AdminRepository handles MongoDB operations for Admin
type AdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{
		collection: db.Collection("admins"),
	}
}

// Create inserts a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = primitive.NewObjectID()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, admin)
	return err
}

// FindByID finds an admin by ID
func (r *AdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByEmail finds an admin by email
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindAll retrieves all admins
func (r *AdminRepository) FindAll(ctx context.Context) ([]*models.Admin, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []*models.Admin
	if err = cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	if admins == nil {
		admins = []*models.Admin{}
	}
	return admins, nil
}

// Update updates an existing admin
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	admin.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": admin.ID}, bson.M{"$set": admin})
	return err
}

// Delete deletes an admin by ID
func (r *AdminRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
