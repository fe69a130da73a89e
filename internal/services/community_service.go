package services

import (
	"context"
	"fmt"

	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommunityService handles the shared feed of posts, likes and comments
type CommunityService struct {
	postRepo repositories.CommunityPostRepository
	userRepo repositories.UserRepository
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(postRepo repositories.CommunityPostRepository, userRepo repositories.UserRepository) *CommunityService {
	return &CommunityService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost publishes a feed entry. At least one of text and image must be
// present.
func (s *CommunityService) CreatePost(ctx context.Context, post *models.CommunityPost) (*models.CommunityPost, error) {
	if post.Text == "" && post.Image == "" {
		return nil, fmt.Errorf("%w: a post needs text or an image", ErrInvalidInput)
	}
	user, err := s.userRepo.FindByID(ctx, post.UserID)
	if err != nil {
		return nil, translate(err)
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	post.User = user
	return post, nil
}

// GetPostByID retrieves a post with its author populated
func (s *CommunityService) GetPostByID(ctx context.Context, id primitive.ObjectID) (*models.CommunityPost, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	s.populate(ctx, post)
	return post, nil
}

// GetAllPosts retrieves the feed, newest first, with authors populated
func (s *CommunityService) GetAllPosts(ctx context.Context) ([]*models.CommunityPost, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		s.populate(ctx, post)
	}
	return posts, nil
}

// ToggleLike adds the user's like, or withdraws it when already present.
// Returns true when the post ends up liked.
func (s *CommunityService) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return false, translate(err)
	}
	for _, id := range post.Likes {
		if id == userID {
			return false, translate(s.postRepo.RemoveLike(ctx, postID, userID))
		}
	}
	return true, translate(s.postRepo.AddLike(ctx, postID, userID))
}

// AddComment appends a comment to a post
func (s *CommunityService) AddComment(ctx context.Context, postID, userID primitive.ObjectID, text string) error {
	if text == "" {
		return fmt.Errorf("%w: comment text is required", ErrInvalidInput)
	}
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return translate(err)
	}
	comment := models.Comment{
		UserID: userID,
		Text:   text,
	}
	return translate(s.postRepo.AddComment(ctx, postID, comment))
}

// GetComments retrieves a post's comments
func (s *CommunityService) GetComments(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, translate(err)
	}
	return post.Comments, nil
}

// DeletePost removes a post. Only the author may delete their own post.
func (s *CommunityService) DeletePost(ctx context.Context, postID, userID primitive.ObjectID) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return translate(err)
	}
	if post.UserID != userID {
		return fmt.Errorf("%w: only the author can delete a post", ErrForbidden)
	}
	return s.postRepo.Delete(ctx, postID)
}

func (s *CommunityService) populate(ctx context.Context, post *models.CommunityPost) {
	if user, err := s.userRepo.FindByID(ctx, post.UserID); err == nil {
		post.User = user
	}
}
