package blog

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) Latest(ctx context.Context) ([]Summary, error) {
	blogs, err := s.repo.List(ctx, 0, LatestCount)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, b.Summary())
	}
	return out, nil
}

// Forum returns page (zero-based) of the newest blogs and the total count.
func (s *Service) Forum(ctx context.Context, page int) (*ForumPage, error) {
	if page < 0 {
		return nil, ErrInvalidPage
	}
	blogs, err := s.repo.List(ctx, page*PageSize, PageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ForumPage{Blogs: blogs, TotalBlogs: total}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Blog, error) {
	return s.repo.Get(ctx, id)
}

// Create publishes b under authorEmail. Counters always start at zero.
func (s *Service) Create(ctx context.Context, authorEmail string, b *Blog) error {
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return ErrTitleRequired
	}
	b.ID = ""
	b.AuthorEmail = authorEmail
	b.Likes, b.Dislikes = 0, 0
	if b.PostDate.IsZero() {
		b.PostDate = s.now()
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) AdjustVotes(ctx context.Context, id string, likes, dislikes int) error {
	return s.repo.AdjustVotes(ctx, id, likes, dislikes)
}
