package helium

import (
	"context"
	"encoding/json"
	"net/url"
)

// Stream is a lazy sequence over a paginated list endpoint. Each call to
// Next either yields a buffered item or requests the next page; the
// sequence ends when the server stops returning a cursor. A Stream is not
// safe for concurrent use; the caller controls pacing by pulling items.
type Stream[T any] struct {
	client *Client
	path   string
	params url.Values

	buf     []T
	current T
	cursor  string
	done    bool
	err     error
}

// Next advances the stream to the next item, fetching further pages as
// needed. It returns false when the stream is exhausted or has failed;
// check Err to tell the two apart.
func (s *Stream[T]) Next(ctx context.Context) bool {
	if s.err != nil {
		return false
	}
	for len(s.buf) == 0 {
		if s.done {
			return false
		}
		if err := s.fetchPage(ctx); err != nil {
			s.err = err
			return false
		}
	}
	s.current = s.buf[0]
	s.buf = s.buf[1:]
	return true
}

// Item returns the item the last successful Next advanced to.
func (s *Stream[T]) Item() T {
	return s.current
}

// Err returns the error that terminated the stream, if any. Items yielded
// before the failure are not lost.
func (s *Stream[T]) Err() error {
	return s.err
}

// Take pulls up to n items from the stream. It returns fewer when the
// stream ends early, together with the terminal error if one occurred.
func (s *Stream[T]) Take(ctx context.Context, n int) ([]T, error) {
	items := make([]T, 0, n)
	for len(items) < n && s.Next(ctx) {
		items = append(items, s.Item())
	}
	return items, s.Err()
}

// Collect drains the remainder of the stream.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for s.Next(ctx) {
		items = append(items, s.Item())
	}
	return items, s.Err()
}

func (s *Stream[T]) fetchPage(ctx context.Context) error {
	env, err := s.client.getEnvelope(ctx, s.path, s.params, s.cursor)
	if err != nil {
		return err
	}

	var page []T
	if err := json.Unmarshal(env.Data, &page); err != nil {
		return &DecodeError{Path: s.path, Err: err}
	}

	s.buf = append(s.buf, page...)
	s.cursor = env.Cursor
	if env.Cursor == "" {
		s.done = true
	}
	return nil
}
