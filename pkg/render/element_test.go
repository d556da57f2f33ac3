package render_test

import (
	"testing"

	"github.com/goliatone/go-dbform/pkg/render"
)

func TestElementString(t *testing.T) {
	tests := []struct {
		name string
		el   render.Element
		want string
	}{
		{
			name: "self closing with lead",
			el: render.Element{
				Tag:         "input",
				Lead:        []render.Attr{{Name: "type", Value: "text"}, {Name: "name", Value: render.ContentName("email")}},
				Attrs:       render.Attributes{"value": "", "id": "email", "name": "email"},
				SelfClosing: true,
			},
			want: `<input type="text" name="content[email]" id="email" value="" />`,
		},
		{
			name: "body is verbatim",
			el: render.Element{
				Tag:   "select",
				Attrs: render.Attributes{"size": "1"},
				Body:  `<option value="a">a</option>`,
			},
			want: `<select size="1"><option value="a">a</option></select>`,
		},
		{
			name: "bare",
			el:   render.Element{Tag: "div"},
			want: `<div></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.String(); got != tt.want {
				t.Fatalf("String() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestTextEscapes(t *testing.T) {
	if got := render.Text("Cote d'Ivoire & <b>"); got != "Cote d&#39;Ivoire &amp; &lt;b&gt;" {
		t.Fatalf("unexpected escaped text %q", got)
	}
}
