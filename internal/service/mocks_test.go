package service

import (
	"context"
	"time"

	"yatube/internal/model"
)

// =============================================================================
// MOCK REPOSITORIES
// =============================================================================
//
// The services depend on repository INTERFACES, so the tests swap in mocks
// with function fields. Each test sets only the functions it needs; the
// zero-value fallbacks return NotFound / empty so unset paths fail loudly.

type mockUserRepository struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)

	createCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

type mockGroupRepository struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Group, error)
	getBySlugFn func(ctx context.Context, slug string) (*model.Group, error)
	listFn      func(ctx context.Context) ([]model.Group, error)
}

func (m *mockGroupRepository) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrGroupNotFound
}

func (m *mockGroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, model.ErrGroupNotFound
}

func (m *mockGroupRepository) List(ctx context.Context) ([]model.Group, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockPostRepository struct {
	createFn         func(ctx context.Context, post *model.Post) error
	getByIDFn        func(ctx context.Context, postID int64) (*model.Post, error)
	updateFn         func(ctx context.Context, postID, authorID int64, input model.PostInput) (*model.Post, error)
	countAllFn       func(ctx context.Context) (int, error)
	listAllFn        func(ctx context.Context, limit, offset int) ([]model.Post, error)
	countByGroupFn   func(ctx context.Context, groupID int64) (int, error)
	listByGroupFn    func(ctx context.Context, groupID int64, limit, offset int) ([]model.Post, error)
	countByAuthorsFn func(ctx context.Context, authorIDs []int64) (int, error)
	listByAuthorsFn  func(ctx context.Context, authorIDs []int64, limit, offset int) ([]model.Post, error)
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Update(ctx context.Context, postID, authorID int64, input model.PostInput) (*model.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, postID, authorID, input)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) CountAll(ctx context.Context) (int, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

func (m *mockPostRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Post, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockPostRepository) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	if m.countByGroupFn != nil {
		return m.countByGroupFn(ctx, groupID)
	}
	return 0, nil
}

func (m *mockPostRepository) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]model.Post, error) {
	if m.listByGroupFn != nil {
		return m.listByGroupFn(ctx, groupID, limit, offset)
	}
	return nil, nil
}

func (m *mockPostRepository) CountByAuthors(ctx context.Context, authorIDs []int64) (int, error) {
	if m.countByAuthorsFn != nil {
		return m.countByAuthorsFn(ctx, authorIDs)
	}
	return 0, nil
}

func (m *mockPostRepository) ListByAuthors(ctx context.Context, authorIDs []int64, limit, offset int) ([]model.Post, error) {
	if m.listByAuthorsFn != nil {
		return m.listByAuthorsFn(ctx, authorIDs, limit, offset)
	}
	return nil, nil
}

type mockCommentRepository struct {
	createFn     func(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error)
	listByPostFn func(ctx context.Context, postID int64) ([]model.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, postID, authorID int64, text string) (*model.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, postID, authorID, text)
	}
	return &model.Comment{PostID: postID, AuthorID: authorID, Text: text}, nil
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return nil, nil
}

type mockFollowRepository struct {
	createFn    func(ctx context.Context, followerID, authorID int64) (bool, error)
	deleteFn    func(ctx context.Context, followerID, authorID int64) error
	existsFn    func(ctx context.Context, followerID, authorID int64) (bool, error)
	authorIDsFn func(ctx context.Context, followerID int64) ([]int64, error)

	createCalls int
	deleteCalls int
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, authorID int64) (bool, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, followerID, authorID)
	}
	return true, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, authorID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, authorID)
	}
	return nil
}

func (m *mockFollowRepository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, followerID, authorID)
	}
	return false, nil
}

func (m *mockFollowRepository) AuthorIDs(ctx context.Context, followerID int64) ([]int64, error) {
	if m.authorIDsFn != nil {
		return m.authorIDsFn(ctx, followerID)
	}
	return nil, nil
}

// mockPageCache is an in-memory page cache with manual expiry control, so
// tests can cross the TTL boundary without sleeping.
type mockPageCache struct {
	entries map[int][]byte
	sets    int
}

func newMockPageCache() *mockPageCache {
	return &mockPageCache{entries: make(map[int][]byte)}
}

func (m *mockPageCache) Get(ctx context.Context, page int) ([]byte, bool, error) {
	body, ok := m.entries[page]
	return body, ok, nil
}

func (m *mockPageCache) Set(ctx context.Context, page int, body []byte, ttl time.Duration) error {
	m.sets++
	m.entries[page] = body
	return nil
}

// expire drops an entry as if its TTL had elapsed.
func (m *mockPageCache) expire(page int) {
	delete(m.entries, page)
}
