package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tripondo/tripondo-backend/internal/models"
)

func newCommunityFixture() (*CommunityService, *fakeUserRepo, *fakeCommunityPostRepo) {
	userRepo := newFakeUserRepo()
	postRepo := newFakeCommunityPostRepo()
	return NewCommunityService(postRepo, userRepo), userRepo, postRepo
}

func TestCreatePostNeedsContent(t *testing.T) {
	svc, userRepo, _ := newCommunityFixture()
	ctx := context.Background()

	user := &models.User{Name: "Dorra", Email: "dorra@example.com"}
	userRepo.Create(ctx, user)

	if _, err := svc.CreatePost(ctx, &models.CommunityPost{UserID: user.ID}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty post err = %v, want %v", err, ErrInvalidInput)
	}

	post, err := svc.CreatePost(ctx, &models.CommunityPost{UserID: user.ID, Text: "Sunset at Sidi Bou Said"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.User == nil || post.User.Name != "Dorra" {
		t.Error("author not populated on created post")
	}
}

func TestToggleLike(t *testing.T) {
	svc, userRepo, postRepo := newCommunityFixture()
	ctx := context.Background()

	author := &models.User{Name: "Bilel", Email: "bilel@example.com"}
	userRepo.Create(ctx, author)
	fan := &models.User{Name: "Syrine", Email: "syrine@example.com"}
	userRepo.Create(ctx, fan)

	post, err := svc.CreatePost(ctx, &models.CommunityPost{UserID: author.ID, Text: "Medina walk"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	liked, err := svc.ToggleLike(ctx, post.ID, fan.ID)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if !liked {
		t.Error("first toggle should like the post")
	}
	stored, _ := postRepo.FindByID(ctx, post.ID)
	if len(stored.Likes) != 1 {
		t.Fatalf("likes = %d, want 1", len(stored.Likes))
	}

	liked, err = svc.ToggleLike(ctx, post.ID, fan.ID)
	if err != nil {
		t.Fatalf("ToggleLike again: %v", err)
	}
	if liked {
		t.Error("second toggle should withdraw the like")
	}
	stored, _ = postRepo.FindByID(ctx, post.ID)
	if len(stored.Likes) != 0 {
		t.Errorf("likes after withdraw = %d, want 0", len(stored.Likes))
	}
}

func TestAddAndReadComments(t *testing.T) {
	svc, userRepo, _ := newCommunityFixture()
	ctx := context.Background()

	author := &models.User{Name: "Khaled", Email: "khaled@example.com"}
	userRepo.Create(ctx, author)

	post, err := svc.CreatePost(ctx, &models.CommunityPost{UserID: author.ID, Text: "Any tips for Matmata?"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := svc.AddComment(ctx, post.ID, author.ID, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty comment err = %v, want %v", err, ErrInvalidInput)
	}
	if err := svc.AddComment(ctx, post.ID, author.ID, "Go early, it gets hot"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	comments, err := svc.GetComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetComments: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "Go early, it gets hot" {
		t.Errorf("comments = %+v, want the one added", comments)
	}
}

func TestDeletePostAuthorOnly(t *testing.T) {
	svc, userRepo, postRepo := newCommunityFixture()
	ctx := context.Background()

	author := &models.User{Name: "Maram", Email: "maram@example.com"}
	userRepo.Create(ctx, author)
	stranger := &models.User{Name: "Zied", Email: "zied@example.com"}
	userRepo.Create(ctx, stranger)

	post, err := svc.CreatePost(ctx, &models.CommunityPost{UserID: author.ID, Text: "Selling my camping gear"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := svc.DeletePost(ctx, post.ID, stranger.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete err = %v, want %v", err, ErrForbidden)
	}
	if _, err := postRepo.FindByID(ctx, post.ID); err != nil {
		t.Fatal("post should survive a stranger's delete attempt")
	}

	if err := svc.DeletePost(ctx, post.ID, author.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
}
