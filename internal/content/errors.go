package content

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrPageNotFound     = errors.New("content: page not found")
	ErrMalformedContent = errors.New("content: malformed content")
	ErrRenderFailed     = errors.New("content: markdown render failed")
	ErrUnknownKind      = errors.New("content: unknown content kind")
)

const (
	pageNotFoundCode     = "PAGE_NOT_FOUND"
	contentMalformedCode = "CONTENT_MALFORMED"
	renderFailedCode     = "CONTENT_RENDER_FAILED"
)

func pageNotFoundError(slug, requested string) error {
	return goerrors.Wrap(
		fmt.Errorf("%w: %q (locale %q)", ErrPageNotFound, slug, requested),
		goerrors.CategoryNotFound,
		"page not found",
	).WithTextCode(pageNotFoundCode)
}

func malformedContentError(path string, cause error) error {
	return goerrors.Wrap(
		fmt.Errorf("%w: %s: %w", ErrMalformedContent, path, cause),
		goerrors.CategoryValidation,
		"content malformed: "+path,
	).WithTextCode(contentMalformedCode)
}

func renderError(path string, cause error) error {
	return goerrors.Wrap(
		fmt.Errorf("%w: %s: %w", ErrRenderFailed, path, cause),
		goerrors.CategoryInternal,
		"content render failed: "+path,
	).WithTextCode(renderFailedCode)
}
