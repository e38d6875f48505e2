package service

import (
	"context"
	"errors"
	"testing"

	"yatube/internal/model"
)

func TestCommentService_Add_Success(t *testing.T) {
	posts := &mockPostRepository{
		getByIDFn: func(ctx context.Context, postID int64) (*model.Post, error) {
			return &model.Post{ID: postID}, nil
		},
	}
	comments := &mockCommentRepository{
		createFn: func(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error) {
			return &model.Comment{ID: 1, PostID: postID, AuthorID: authorID, Text: text}, nil
		},
	}
	users := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Username: "leo"}, nil
		},
	}
	svc := NewCommentService(comments, posts, users)

	got, err := svc.Add(context.Background(), 10, 1, "nice post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "nice post" {
		t.Errorf("text = %q, want %q", got.Text, "nice post")
	}
	if got.Author == nil || got.Author.Username != "leo" {
		t.Errorf("author = %v, want leo", got.Author)
	}
}

func TestCommentService_Add_EmptyText(t *testing.T) {
	created := false
	comments := &mockCommentRepository{
		createFn: func(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error) {
			created = true
			return &model.Comment{}, nil
		},
	}
	svc := NewCommentService(comments, &mockPostRepository{}, &mockUserRepository{})

	_, err := svc.Add(context.Background(), 10, 1, "   ")
	if !errors.Is(err, model.ErrTextRequired) {
		t.Errorf("error = %v, want %v", err, model.ErrTextRequired)
	}
	if created {
		t.Error("no comment should be written for empty text")
	}
}

func TestCommentService_Add_UnknownPost(t *testing.T) {
	svc := NewCommentService(&mockCommentRepository{}, &mockPostRepository{}, &mockUserRepository{})

	_, err := svc.Add(context.Background(), 404, 1, "hello")
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrPostNotFound)
	}
}
