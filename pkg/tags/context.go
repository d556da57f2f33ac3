package tags

// ParentKind identifies the enclosing field group of an option tag.
type ParentKind string

const (
	ParentNone       ParentKind = ""
	ParentSelect     ParentKind = "select"
	ParentRadioGroup ParentKind = "radio-group"
)

// Page is the host page data a render needs.
type Page struct {
	// URL is used as the form action.
	URL string
	// FormErrors are shown inside the form's error container, typically the
	// message of a failed capture attempt.
	FormErrors []string
}

// Scope is inherited by nested tags and restored when the enclosing tag
// finishes expanding.
type Scope struct {
	FormName   string
	Validate   bool
	ParentName string
	ParentKind ParentKind
}

type renderState struct {
	optionCount int
}

type settings struct {
	validationScript string
}

// Context is the TagRenderContext threaded through every handler. A new one
// is built for each render; derived contexts share the render-wide state.
type Context struct {
	Page  Page
	Scope Scope

	settings settings
	state    *renderState
}

// NewContext builds a fresh context for a single render of page.
func NewContext(page Page) *Context {
	return newContext(page, settings{validationScript: DefaultValidationScript})
}

func newContext(page Page, cfg settings) *Context {
	return &Context{
		Page:     page,
		settings: cfg,
		state:    &renderState{},
	}
}

// WithScope returns a child context whose scope has been modified by fn.
// The receiver is left untouched.
func (c *Context) WithScope(fn func(*Scope)) *Context {
	child := *c
	if fn != nil {
		fn(&child.Scope)
	}
	return &child
}

// NextOptionID increments and returns the radio option counter. The counter
// spans the whole render, it is not reset per radio group.
func (c *Context) NextOptionID() int {
	c.state.optionCount++
	return c.state.optionCount
}
