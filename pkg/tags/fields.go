package tags

import (
	"strconv"

	"github.com/goliatone/go-dbform/pkg/render"
)

func selectHandler(tag Tag, ctx *Context) (string, error) {
	name, err := requireName(tag)
	if err != nil {
		return "", err
	}
	attrs := tag.Attrs.WithDefaults(render.Attributes{
		render.AttrID: name,
		"size":        "1",
	})

	inner, err := tag.Expand(ctx.WithScope(func(scope *Scope) {
		scope.ParentName = name
		scope.ParentKind = ParentSelect
	}))
	if err != nil {
		return "", err
	}

	return render.Element{
		Tag:   "select",
		Lead:  []render.Attr{{Name: "name", Value: render.ContentName(name)}},
		Attrs: attrs,
		Body:  inner,
	}.String(), nil
}

func textareaHandler(tag Tag, ctx *Context) (string, error) {
	name, err := requireName(tag)
	if err != nil {
		return "", err
	}
	attrs := tag.Attrs.WithDefaults(render.Attributes{
		render.AttrID: name,
		"rows":        "5",
		"cols":        "35",
	})

	inner, err := tag.Expand(ctx)
	if err != nil {
		return "", err
	}

	return render.Element{
		Tag:   "textarea",
		Lead:  []render.Attr{{Name: "name", Value: render.ContentName(name)}},
		Attrs: attrs,
		Body:  inner,
	}.String(), nil
}

func radioGroupHandler(tag Tag, ctx *Context) (string, error) {
	name, err := requireName(tag)
	if err != nil {
		return "", err
	}
	return tag.Expand(ctx.WithScope(func(scope *Scope) {
		scope.ParentName = name
		scope.ParentKind = ParentRadioGroup
	}))
}

// optionHandler renders nothing outside a select or radio group.
func optionHandler(tag Tag, ctx *Context) (string, error) {
	name, err := requireName(tag)
	if err != nil {
		return "", err
	}
	value := name
	if tag.Attrs.Has(render.AttrValue) {
		value = tag.Attrs.Get(render.AttrValue)
	}

	switch ctx.Scope.ParentKind {
	case ParentSelect:
		return render.Element{
			Tag:   "option",
			Lead:  []render.Attr{{Name: "value", Value: value}},
			Attrs: tag.Attrs.Without(render.AttrValue),
			Body:  render.Text(name),
		}.String(), nil

	case ParentRadioGroup:
		id := ctx.Scope.ParentName + "_" + strconv.Itoa(ctx.NextOptionID())
		input := InputTag("radio", tag.Attrs.Merge(render.Attributes{
			render.AttrID:    id,
			render.AttrValue: value,
			render.AttrName:  ctx.Scope.ParentName,
		}))
		label := render.Element{
			Tag:  "label",
			Lead: []render.Attr{{Name: "for", Value: id}},
			Body: render.Text(name),
		}
		return input + label.String(), nil

	default:
		return "", nil
	}
}
