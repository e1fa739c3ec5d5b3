package forms

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SearchForm carries the search_term of the search routes. An empty term
// matches everything.
type SearchForm struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

func (f SearchForm) Term() string {
	return strings.TrimSpace(f.SearchTerm)
}

// BindSearch reads search_term from the body, or from the query string when
// the body is empty.
func BindSearch(c *gin.Context) (SearchForm, error) {
	var f SearchForm
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		f.SearchTerm = c.Query("search_term")
		return f, nil
	}
	err := Bind(c, &f)
	return f, err
}
