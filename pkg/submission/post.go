package submission

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
)

// Posted field names outside the content group.
const (
	FieldFormName   = "form_name"
	FieldRedirectTo = "redirect_to"

	contentPrefix = "content["
)

// DefaultMaxMemory bounds the in-memory part of multipart parsing.
const DefaultMaxMemory = 10 << 20

// Post is the decoded body of a form post. Content holds the content[...]
// group keyed by field name; grouped controls keep GroupSuffix.
type Post struct {
	FormName   string
	RedirectTo string
	Content    url.Values
}

// ParsePost decodes a urlencoded or multipart form post. Uploaded files in
// the content group are recorded by file name.
func ParsePost(r *http.Request, maxMemory int64) (Post, error) {
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return Post{}, fmt.Errorf("submission: parse form: %w", err)
	}
	if r.PostForm == nil {
		if err := r.ParseForm(); err != nil {
			return Post{}, fmt.Errorf("submission: parse form: %w", err)
		}
	}

	post := Post{
		FormName:   strings.TrimSpace(r.PostForm.Get(FieldFormName)),
		RedirectTo: strings.TrimSpace(r.PostForm.Get(FieldRedirectTo)),
		Content:    url.Values{},
	}
	for key, values := range r.PostForm {
		if name, ok := contentKey(key); ok {
			post.Content[name] = append(post.Content[name], values...)
		}
	}
	if r.MultipartForm != nil {
		for key, headers := range r.MultipartForm.File {
			name, ok := contentKey(key)
			if !ok {
				continue
			}
			for _, header := range headers {
				post.Content[name] = append(post.Content[name], filepath.Base(header.Filename))
			}
		}
	}
	return post, nil
}

// contentKey maps content[x] to x and content[x][] (or any deeper nesting)
// to x[].
func contentKey(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, contentPrefix)
	if !ok {
		return "", false
	}
	name, tail, ok := strings.Cut(rest, "]")
	if !ok || name == "" {
		return "", false
	}
	if tail != "" {
		return name + GroupSuffix, true
	}
	return name, true
}

// reserved names are button artifacts, never data.
var reserved = map[string]struct{}{
	"Submit": {},
	"Ignore": {},
}

// CleanContent drops the Submit and Ignore button values and every *_verify
// confirmation field.
func CleanContent(content url.Values) url.Values {
	out := make(url.Values, len(content))
	for key, values := range content {
		name := strings.TrimSuffix(key, GroupSuffix)
		if _, skip := reserved[name]; skip {
			continue
		}
		if strings.HasSuffix(name, "_verify") {
			continue
		}
		out[key] = append([]string(nil), values...)
	}
	return out
}
