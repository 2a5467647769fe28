// Package ui renders the task list page. Components are written directly on
// the templ runtime (templ.ComponentFunc) instead of generated .templ files;
// the page is small enough that the generator buys nothing.
//
// The whole list is rebuilt from a store snapshot on every request. That is
// the accepted trade-off here: no fragment diffing, no client-side state,
// just a fresh page after each mutation.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"ticklist/internal/task"
)

// PageData is the store snapshot the page renders from.
type PageData struct {
	Tasks     []task.Task
	EditingID int64
	Remaining int
}

func ListPage(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString("<!doctype html>\n")
		b.WriteString(`<html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString("<title>ticklist</title>")
		b.WriteString(`<link rel="stylesheet" href="/static/css/app.css">`)
		b.WriteString(`<script src="/static/js/app.js" defer></script>`)
		b.WriteString("</head><body>\n")
		b.WriteString(`<main class="todo-app">`)
		b.WriteString("<h1>ticklist</h1>\n")

		b.WriteString(`<form class="todo-add" method="post" action="/tasks/add">`)
		b.WriteString(`<input id="new-task" name="title" type="text" placeholder="What needs doing?" autocomplete="off" autofocus>`)
		b.WriteString(`<button id="add-btn" type="submit">Add</button>`)
		b.WriteString("</form>\n")

		b.WriteString(`<ul id="task-list" class="task-list">` + "\n")
		for _, t := range d.Tasks {
			if t.ID == d.EditingID {
				writeTaskEditor(&b, t)
			} else {
				writeTaskView(&b, t)
			}
		}
		b.WriteString("</ul>\n")

		writeFooter(&b, d)

		b.WriteString("</main></body></html>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeTaskView renders a task in view mode: title, a completion-dependent
// status label, and the complete/edit/delete controls.
func writeTaskView(b *strings.Builder, t task.Task) {
	class := "task"
	if t.Completed {
		class = "task completed"
	}
	fmt.Fprintf(b, `<li class="%s" data-id="%d">`, class, t.ID)
	fmt.Fprintf(b, `<span class="title">%s</span>`, templ.EscapeString(t.Title))
	fmt.Fprintf(b, `<span class="status">%s</span>`, templ.EscapeString(statusLabel(t)))

	b.WriteString(`<span class="btn-group">`)
	if !t.Completed {
		fmt.Fprintf(b, `<form method="post" action="/tasks/%d/complete"><button type="submit">done</button></form>`, t.ID)
	}
	fmt.Fprintf(b, `<form method="post" action="/tasks/%d/edit"><button type="submit">edit</button></form>`, t.ID)
	fmt.Fprintf(b, `<form method="post" action="/tasks/%d/delete"><button type="submit">delete</button></form>`, t.ID)
	b.WriteString("</span></li>\n")
}

// writeTaskEditor renders the single task in edit mode: an inline text field
// plus save/cancel. Cancel goes through formaction so it shares the form.
func writeTaskEditor(b *strings.Builder, t task.Task) {
	fmt.Fprintf(b, `<li class="task editing" data-id="%d">`, t.ID)
	fmt.Fprintf(b, `<form class="edit-form" method="post" action="/tasks/%d/save">`, t.ID)
	fmt.Fprintf(b, `<input class="edit-input" name="title" type="text" value="%s" autofocus>`, templ.EscapeString(t.Title))
	b.WriteString(`<span class="btn-group">`)
	b.WriteString(`<button type="submit">save</button>`)
	fmt.Fprintf(b, `<button type="submit" formaction="/tasks/%d/cancel" formnovalidate>cancel</button>`, t.ID)
	b.WriteString("</span></form></li>\n")
}

func writeFooter(b *strings.Builder, d PageData) {
	fmt.Fprintf(b, `<p class="todo-footer">%s</p>`+"\n", templ.EscapeString(footerLabel(d)))
}

func statusLabel(t task.Task) string {
	if t.Completed {
		return "done " + t.CompletedTime
	}
	if t.ModifiedTime != "" {
		return "edited " + t.ModifiedTime
	}
	return "open"
}

func footerLabel(d PageData) string {
	if len(d.Tasks) == 0 {
		return "nothing to do"
	}
	noun := "items"
	if d.Remaining == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%d %s left of %d", d.Remaining, noun, len(d.Tasks))
}
