package blogs

import (
	"net/http"

	"BlogAPI/pkg/response"
)

var (
	ErrBlogNotFound     = response.NewError(http.StatusNotFound, "blog not found")
	ErrCategoryNotFound = response.NewError(http.StatusNotFound, "blog category not found")
	ErrBlogNotOwned     = response.NewError(http.StatusForbidden, "blog does not belong to user")
	ErrCreateBlog       = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog       = response.NewError(http.StatusInternalServerError, "failed to update blog")

	// A blog row referencing a vanished creator or category is a
	// data-integrity failure, not a 404.
	ErrDataIntegrity = response.NewError(http.StatusInternalServerError, "blog references a missing creator or category")
)
