package cloudflare

import (
	"context"
	"errors"
	"fmt"
)

// ListPager fetches one page of a list endpoint. It is implemented by the
// resource clients and mocked in tests.
type ListPager[T any] interface {
	ListPage(ctx context.Context, path string, opts *ListOptions) (*ListResponse[T], error)
}

// PaginationOptions tunes the page-fetching helpers.
type PaginationOptions struct {
	// PageSize is the per_page value used for each request.
	PageSize int
	// MaxPages bounds how many pages are fetched; 0 means all pages.
	MaxPages int
}

// PageIterator provides a lazy, forward-only view over a paginated list
// endpoint. Pages are fetched strictly in sequence and only when the
// iteration actually reaches them; stopping early never fetches further
// pages. An iterator is single-use and not safe for concurrent callers.
type PageIterator[T any] struct {
	ctx   context.Context
	pager ListPager[T]
	path  string
	opts  *ListOptions

	items []T
	index int
	info  *ResultInfo
	done  bool
}

// NewPageIterator creates an iterator over the given list endpoint. The
// caller's filter fields are held constant across pages; only the page
// number advances.
func NewPageIterator[T any](ctx context.Context, pager ListPager[T], path string, opts *ListOptions) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		pager: pager,
		path:  path,
		opts:  opts.Clone(),
	}
}

// HasNext reports whether another item may be available. Before the first
// fetch it is optimistically true; it never issues a request itself.
func (it *PageIterator[T]) HasNext() bool {
	return it.index < len(it.items) || !it.done
}

// Next returns the next item in page order, fetching the next page exactly
// when the current one is exhausted. It returns ErrNoMoreItems once the
// sequence is terminal.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.index < len(it.items) {
		item := it.items[it.index]
		it.index++

		return item, nil
	}

	if it.done {
		return zero, ErrNoMoreItems
	}

	err := it.fetchNextPage()
	if err != nil {
		it.done = true

		return zero, err
	}

	if len(it.items) == 0 {
		it.done = true

		return zero, ErrNoMoreItems
	}

	item := it.items[0]
	it.index = 1

	return item, nil
}

// All drains the iterator and returns every remaining item in page order.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return all, nil
			}

			return nil, err
		}

		all = append(all, item)
	}
}

// ForEach invokes fn for every remaining item. Returning an error from fn
// stops the iteration immediately; later pages are never fetched.
func (it *PageIterator[T]) ForEach(fn func(item T) error) error {
	for {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}
}

// First returns the first item satisfying match, stopping the iteration at
// that point. It returns nil when the sequence is exhausted without a
// match.
func (it *PageIterator[T]) First(match func(item T) bool) (*T, error) {
	for {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil, nil
			}

			return nil, err
		}

		if match(item) {
			return &item, nil
		}
	}
}

func (it *PageIterator[T]) fetchNextPage() error {
	err := it.ctx.Err()
	if err != nil {
		return fmt.Errorf("fetching next page: %w", err)
	}

	if it.info == nil {
		if it.opts.Page == 0 {
			it.opts.Page = 1
		}
	} else {
		it.opts.Page = it.info.Page + 1
	}

	page, err := it.pager.ListPage(it.ctx, it.path, it.opts)
	if err != nil {
		return err
	}

	info := page.Info
	if info.Page == 0 {
		info.Page = it.opts.Page
	}

	it.items = page.Items
	it.index = 0
	it.info = &info
	it.done = info.LastPage() || len(page.Items) == 0

	return nil
}

// FetchAllPages eagerly collects every page of a list endpoint into one
// slice, bounded by opts.MaxPages when set.
func FetchAllPages[T any](ctx context.Context, pager ListPager[T], path string, listOpts *ListOptions, opts *PaginationOptions) ([]T, error) {
	listOpts = listOpts.Clone()
	if opts != nil && opts.PageSize > 0 {
		listOpts.PerPage = opts.PageSize
	}

	if listOpts.Page == 0 {
		listOpts.Page = 1
	}

	maxPages := 0
	if opts != nil {
		maxPages = opts.MaxPages
	}

	var all []T

	pages := 0

	for {
		err := ctx.Err()
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", listOpts.Page, err)
		}

		page, err := pager.ListPage(ctx, path, listOpts)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Items...)
		pages++

		info := page.Info
		if info.Page == 0 {
			info.Page = listOpts.Page
		}

		if info.LastPage() || len(page.Items) == 0 {
			return all, nil
		}

		if maxPages > 0 && pages >= maxPages {
			return all, nil
		}

		listOpts.Page = info.Page + 1
	}
}

// PageResult carries one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Info  ResultInfo
	Err   error
}

// StreamPages fetches pages sequentially and delivers each one on the
// returned channel. The channel is closed after the terminal page, after
// the first error, or when ctx is cancelled.
func StreamPages[T any](ctx context.Context, pager ListPager[T], path string, listOpts *ListOptions, opts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	listOpts = listOpts.Clone()
	if opts != nil && opts.PageSize > 0 {
		listOpts.PerPage = opts.PageSize
	}

	if listOpts.Page == 0 {
		listOpts.Page = 1
	}

	maxPages := 0
	if opts != nil {
		maxPages = opts.MaxPages
	}

	go func() {
		defer close(results)

		pages := 0

		for {
			page, err := pager.ListPage(ctx, path, listOpts)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			info := page.Info
			if info.Page == 0 {
				info.Page = listOpts.Page
			}

			select {
			case results <- PageResult[T]{Items: page.Items, Info: info}:
			case <-ctx.Done():
				return
			}

			pages++

			if info.LastPage() || len(page.Items) == 0 {
				return
			}

			if maxPages > 0 && pages >= maxPages {
				return
			}

			listOpts.Page = info.Page + 1
		}
	}()

	return results
}
