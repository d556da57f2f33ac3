package tags_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-dbform/pkg/tags"
)

func render(t *testing.T, src string, page tags.Page) string {
	t.Helper()
	out, err := tags.New().RenderString(context.Background(), src, page)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	return out
}

func TestFormWithTextInput(t *testing.T) {
	got := render(t, `<r:database:form name="contact"><r:database:text name="name"/></r:database:form>`, tags.Page{URL: "/contact/"})

	want := `<form action="/contact/" method="post" enctype="multipart/form-data" id="contact" name="contact">` +
		`<input type="hidden" name="form_name" value="contact" />` +
		`<input type="text" name="content[name]" id="name" value="" />` +
		`</form>`
	if got != want {
		t.Fatalf("unexpected form markup:\n got %s\nwant %s", got, want)
	}
}

func TestShortTagNamesResolveInsideNamespace(t *testing.T) {
	got := render(t, `<r:database><r:form name="contact"><r:text name="email" validate="required validate-email"/></r:form></r:database>`, tags.Page{URL: "/contact/"})

	if !strings.Contains(got, `<input type="text" name="content[email]" class=" required validate-email" id="email" value="" />`) {
		t.Fatalf("expected resolved text input, got:\n%s", got)
	}
}

func TestFormRedirectAndClass(t *testing.T) {
	tests := []struct {
		name  string
		attrs string
		want  string
	}{
		{name: "redirect_to", attrs: `redirect_to="/thanks"`, want: `<input type="hidden" name="redirect_to" value="/thanks" />`},
		{name: "return_to alias", attrs: `return_to="/done"`, want: `<input type="hidden" name="redirect_to" value="/done" />`},
		{name: "class", attrs: `class="wide"`, want: `<form action="/c/" method="post" class="wide" enctype="multipart/form-data" id="c" name="c">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, `<r:database:form name="c" `+tt.attrs+`></r:database:form>`, tags.Page{URL: "/c/"})
			if !strings.Contains(got, tt.want) {
				t.Fatalf("expected %q in:\n%s", tt.want, got)
			}
		})
	}

	plain := render(t, `<r:database:form name="c"></r:database:form>`, tags.Page{URL: "/c/"})
	if strings.Contains(plain, "redirect_to") {
		t.Fatalf("did not expect redirect_to without the attribute:\n%s", plain)
	}
}

func TestFormValidationWiring(t *testing.T) {
	got := render(t, `<r:database:form name="contact" validate="true"><r:submit/><r:reset/></r:database:form>`, tags.Page{URL: "/contact/"})

	for _, want := range []string{
		`<script src="/javascripts/validation.js" type="text/javascript"></script>`,
		`var valid = new Validation('contact', { immediate: false, onFormValidate: formCallback });`,
		`<input type="submit" onclick="valid.validate(); return false" value="" />`,
		`<input type="reset" onclick="valid.reset();" value="" />`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}

	off := render(t, `<r:database:form name="contact" validate="false"><r:submit/></r:database:form>`, tags.Page{URL: "/contact/"})
	if strings.Contains(off, "validation.js") || strings.Contains(off, "onclick") {
		t.Fatalf("validate=false must not emit hooks:\n%s", off)
	}
	if !strings.Contains(off, `<input type="submit" value="" />`) {
		t.Fatalf("expected bare submit input:\n%s", off)
	}
}

func TestCustomValidationScript(t *testing.T) {
	renderer := tags.New(tags.WithValidationScript("/assets/validate.js"))
	got, err := renderer.RenderString(context.Background(), `<r:database:form name="c" validate="yes"></r:database:form>`, tags.Page{})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if !strings.Contains(got, `src="/assets/validate.js"`) {
		t.Fatalf("expected custom script src:\n%s", got)
	}
}

func TestFormErrorSlotIsSanitized(t *testing.T) {
	page := tags.Page{URL: "/c/", FormErrors: []string{"Error encountered <b>while</b> saving", "Error encountered <b>while</b> saving"}}
	got := render(t, `<r:database:form name="c"><r:text name="a"/></r:database:form>`, page)

	want := `<input type="hidden" name="form_name" value="c" /><div class="database-error">Error encountered while saving</div><input type="text"`
	if !strings.Contains(got, want) {
		t.Fatalf("expected sanitized error slot before the controls:\n%s", got)
	}
}

func TestSelectWithOptions(t *testing.T) {
	got := render(t, `<r:database:select name="state" class="picker"><r:option name="Alpha" value="a"/><r:option name="Beta" class="b"/></r:database:select>`, tags.Page{})

	want := `<select name="content[state]" class="picker" id="state" size="1">` +
		`<option value="a">Alpha</option>` +
		`<option value="Beta" class="b">Beta</option>` +
		`</select>`
	if got != want {
		t.Fatalf("unexpected select markup:\n got %s\nwant %s", got, want)
	}
}

func TestTextareaDefaultsAndBody(t *testing.T) {
	got := render(t, `<r:database:textarea name="message" rows="10">Hello <em>there</em></r:database:textarea>`, tags.Page{})

	want := `<textarea name="content[message]" cols="35" id="message" rows="10">Hello <em>there</em></textarea>`
	if got != want {
		t.Fatalf("unexpected textarea markup:\n got %s\nwant %s", got, want)
	}
}

func TestRadioGroupCounterSpansRender(t *testing.T) {
	src := `<r:database:radiogroup name="color"><r:option name="Red"/><r:option name="Blue" value="b"/></r:database:radiogroup>` +
		`<r:database:radiogroup name="size"><r:option name="Small"/></r:database:radiogroup>`

	want := `<input type="radio" name="content[color]" id="color_1" value="Red" /><label for="color_1">Red</label>` +
		`<input type="radio" name="content[color]" id="color_2" value="b" /><label for="color_2">Blue</label>` +
		`<input type="radio" name="content[size]" id="size_3" value="Small" /><label for="size_3">Small</label>`

	renderer := tags.New()
	for i := 0; i < 2; i++ {
		got, err := renderer.RenderString(context.Background(), src, tags.Page{})
		if err != nil {
			t.Fatalf("RenderString() error = %v", err)
		}
		if got != want {
			t.Fatalf("render %d unexpected radio markup:\n got %s\nwant %s", i, got, want)
		}
	}
}

func TestOptionOutsideGroupRendersNothing(t *testing.T) {
	if got := render(t, `<r:database:option name="orphan"/>`, tags.Page{}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestMissingNameAttribute(t *testing.T) {
	tests := []struct {
		tag string
		src string
	}{
		{tag: "database:form", src: `<r:database:form></r:database:form>`},
		{tag: "database:text", src: `<r:database:text/>`},
		{tag: "database:checkbox", src: `<r:database:checkbox name=""/>`},
		{tag: "database:select", src: `<r:database:select></r:database:select>`},
		{tag: "database:textarea", src: `<r:database:textarea></r:database:textarea>`},
		{tag: "database:radiogroup", src: `<r:database:radiogroup></r:database:radiogroup>`},
		{tag: "database:option", src: `<r:database:select name="s"><r:option value="x"/></r:database:select>`},
		{tag: "database:text", src: `<r:database:form name="c"><r:text/></r:database:form>`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := tags.New().RenderString(context.Background(), tt.src, tags.Page{})
			if !errors.Is(err, tags.ErrMissingNameAttribute) {
				t.Fatalf("expected ErrMissingNameAttribute, got %v", err)
			}
			var missing *tags.MissingNameError
			if !errors.As(err, &missing) || missing.Tag != tt.tag {
				t.Fatalf("expected MissingNameError for %q, got %#v", tt.tag, err)
			}
		})
	}
}

func TestMissingNameMessage(t *testing.T) {
	err := &tags.MissingNameError{Tag: "database:form"}
	if got := err.Error(); got != "`database:form' tag requires a `name' attribute" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestSubmitAndResetDoNotRequireName(t *testing.T) {
	got := render(t, `<r:database:submit value="Send"/><r:database:reset/>`, tags.Page{})
	want := `<input type="submit" value="Send" /><input type="reset" value="" />`
	if got != want {
		t.Fatalf("unexpected markup:\n got %s\nwant %s", got, want)
	}
}

func TestUndefinedTag(t *testing.T) {
	_, err := tags.New().RenderString(context.Background(), "\n<r:database:bogus/>", tags.Page{})
	var undefined *tags.UndefinedTagError
	if !errors.As(err, &undefined) {
		t.Fatalf("expected UndefinedTagError, got %v", err)
	}
	if undefined.Tag != "database:bogus" || undefined.Line != 2 {
		t.Fatalf("unexpected error details %#v", undefined)
	}
}

func TestAttributeValuesAreEscaped(t *testing.T) {
	got := render(t, `<r:database:text name="q" placeholder="&quot;&gt;&lt;script&gt;"/>`, tags.Page{})
	if strings.Contains(got, "<script>") {
		t.Fatalf("placeholder must be escaped:\n%s", got)
	}
	if !strings.Contains(got, `placeholder="&#34;&gt;&lt;script&gt;"`) {
		t.Fatalf("expected escaped placeholder:\n%s", got)
	}
}

func TestAttributeNamesAreCaseSensitive(t *testing.T) {
	got := render(t, `<r:database:text name="email" onBlur="check()" Validate="required"/>`, tags.Page{})
	want := `<input type="text" name="content[email]" Validate="required" id="email" onBlur="check()" value="" />`
	if got != want {
		t.Fatalf("unexpected input:\n got: %s\nwant: %s", got, want)
	}
}

func TestConcurrentRendersDoNotShareContext(t *testing.T) {
	renderer := tags.New()
	src := `<r:database:radiogroup name="g"><r:option name="A"/><r:option name="B"/></r:database:radiogroup>`

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := renderer.RenderString(context.Background(), src, tags.Page{})
			if err != nil {
				errs <- err
				return
			}
			if !strings.Contains(out, `id="g_2"`) || strings.Contains(out, `id="g_3"`) {
				errs <- errors.New("counter leaked across renders: " + out)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
