package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"yatube/internal/cache"
	"yatube/internal/model"
	"yatube/internal/repository"
)

// FeedService builds the paginated post feeds. All selection modes share one
// fixed page size and one ordering: (created_at DESC, id DESC).
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	pageCache  cache.PageCache

	pageSize int
	cacheTTL time.Duration
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	pageCache cache.PageCache,
	pageSize int,
	cacheTTL time.Duration,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		pageCache:  pageCache,
		pageSize:   pageSize,
		cacheTTL:   cacheTTL,
	}
}

// paginate clamps the requested page number to the valid range and returns
// the resolved page, the total page count and the list offset. Requests past
// the last page get the last page; requests below 1 get page 1. An empty
// result set has zero pages and resolves to page 1 with an empty slice.
func paginate(total, pageSize, requested int) (page, totalPages, offset int) {
	totalPages = 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	page = requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		// Covers the empty result set too: zero pages resolves to page 1.
		page = totalPages
		if page < 1 {
			page = 1
		}
	}

	offset = (page - 1) * pageSize
	return page, totalPages, offset
}

func newPage(posts []model.Post, page, totalPages, total int) model.Page {
	if posts == nil {
		posts = []model.Post{}
	}
	return model.Page{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages,
		TotalPosts: total,
		HasNext:    page < totalPages,
		HasPrev:    totalPages > 0 && page > 1,
	}
}

// HomePage returns the rendered all-posts feed page, served from the page
// cache when fresh. The cache key is the requested page number alone — the
// payload is identical for every viewer, so it must never carry
// viewer-specific fields. A post created inside the TTL window does not
// appear until the entry expires; that staleness is accepted.
func (s *FeedService) HomePage(ctx context.Context, requested int) ([]byte, error) {
	body, found, err := s.pageCache.Get(ctx, requested)
	if err != nil {
		log.Printf("[FeedService] Page cache read failed, rebuilding: %v", err)
	}
	if found {
		return body, nil
	}

	page, err := s.allPosts(ctx, requested)
	if err != nil {
		return nil, err
	}

	body, err = json.Marshal(page)
	if err != nil {
		return nil, fmt.Errorf("render home page: %w", err)
	}

	if err := s.pageCache.Set(ctx, requested, body, s.cacheTTL); err != nil {
		log.Printf("[FeedService] Page cache write failed: %v", err)
	}

	return body, nil
}

func (s *FeedService) allPosts(ctx context.Context, requested int) (*model.Page, error) {
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	page, totalPages, offset := paginate(total, s.pageSize, requested)
	posts, err := s.postRepo.ListAll(ctx, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	result := newPage(posts, page, totalPages, total)
	return &result, nil
}

// GroupFeed returns the page of posts in the group with the given slug.
// An unknown slug is a hard NotFound, not an empty page.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, requested int) (*model.GroupPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	page, totalPages, offset := paginate(total, s.pageSize, requested)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	return &model.GroupPage{
		Group: *group,
		Page:  newPage(posts, page, totalPages, total),
	}, nil
}

// AuthorFeed returns the page of posts by the named author, plus whether the
// viewer follows them. An unknown username is a hard NotFound.
func (s *FeedService) AuthorFeed(ctx context.Context, username string, requested int, viewerID *int64) (*model.ProfilePage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthors(ctx, []int64{author.ID})
	if err != nil {
		return nil, err
	}

	page, totalPages, offset := paginate(total, s.pageSize, requested)
	posts, err := s.postRepo.ListByAuthors(ctx, []int64{author.ID}, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != nil && *viewerID != author.ID {
		isFollowing, err := s.followRepo.Exists(ctx, *viewerID, author.ID)
		if err == nil {
			following = isFollowing
		}
	}

	return &model.ProfilePage{
		Author:    model.UserSummary{ID: author.ID, Username: author.Username},
		Following: following,
		Page:      newPage(posts, page, totalPages, total),
	}, nil
}

// FollowingFeed returns the page of posts by authors the viewer follows.
// Following nobody yields a valid empty zero-page result, not an error.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID int64, requested int) (*model.Page, error) {
	authorIDs, err := s.followRepo.AuthorIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if len(authorIDs) == 0 {
		result := newPage(nil, 1, 0, 0)
		return &result, nil
	}

	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	page, totalPages, offset := paginate(total, s.pageSize, requested)
	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	result := newPage(posts, page, totalPages, total)
	return &result, nil
}
