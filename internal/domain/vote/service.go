package vote

import (
	"context"
	"log/slog"
	"strings"

	"fitnflex/internal/observability"
)

// BlogCounter is the part of the blog service voting needs.
type BlogCounter interface {
	Exists(ctx context.Context, id string) (bool, error)
	AdjustVotes(ctx context.Context, id string, likes, dislikes int) error
}

type Service struct {
	repo   Repository
	blogs  BlogCounter
	logger *slog.Logger
}

func NewService(repo Repository, blogs BlogCounter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, blogs: blogs, logger: logger}
}

// Cast records email's vote on blogID. A voter sits in at most one of the
// two sets; repeating the same vote changes nothing, voting the other way
// moves the voter across and adjusts both counters. The returned bool
// reports whether any counter moved.
func (s *Service) Cast(ctx context.Context, blogID, email string, dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, ErrInvalidDirection
	}
	email = strings.ToLower(strings.TrimSpace(email))

	ok, err := s.blogs.Exists(ctx, blogID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrBlogNotFound
	}

	target, opposite := Up, Down
	if dir == Dislike {
		target, opposite = Down, Up
	}

	changed := false
	present, err := s.repo.Exists(ctx, target, blogID, email)
	if err != nil {
		return false, err
	}
	if !present {
		// a concurrent vote may have written the pair since Exists
		inserted, err := s.repo.Insert(ctx, target, Vote{BlogID: blogID, Email: email, Direction: dir})
		if err != nil {
			return false, err
		}
		if inserted {
			if err := s.adjust(ctx, blogID, target, 1); err != nil {
				return false, err
			}
			changed = true
		}
	}

	removed, err := s.repo.Delete(ctx, opposite, blogID, email)
	if err != nil {
		return changed, err
	}
	if removed {
		if err := s.adjust(ctx, blogID, opposite, -1); err != nil {
			return changed, err
		}
		changed = true
	}

	observability.RecordVote(string(dir), changed)
	s.logger.Debug("vote cast", "blog_id", blogID, "direction", dir, "changed", changed)
	return changed, nil
}

func (s *Service) adjust(ctx context.Context, blogID string, set Set, delta int) error {
	if set == Up {
		return s.blogs.AdjustVotes(ctx, blogID, delta, 0)
	}
	return s.blogs.AdjustVotes(ctx, blogID, 0, delta)
}
