// Command example builds a small page with the elem DSL and prints both
// the compact and the pretty-printed serialization.
package main

import (
	"fmt"
	"log/slog"
	"os"

	elem "github.com/dpotapov/go-elem"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	page, err := buildPage()
	if err != nil {
		logger.Error("Build page", "error", err)
		os.Exit(1)
	}

	r := &elem.Renderer{Logger: logger}
	out, err := r.RenderString(page)
	if err != nil {
		logger.Error("Render page", "error", err)
		os.Exit(1)
	}
	fmt.Println(out)

	pretty, err := elem.Indent(page, 2)
	if err != nil {
		logger.Error("Indent page", "error", err)
		os.Exit(1)
	}
	fmt.Println(pretty)
}

func buildPage() (elem.Child, error) {
	heading, err := elem.New("h1").Add(elem.Text("Shopping list"))
	if err != nil {
		return nil, err
	}

	var items []elem.Child
	for _, name := range []string{"Apples", "Oranges", "Bread & butter"} {
		item, err := elem.New("li").Add(elem.Text(name))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	list, err := elem.New("ul").Add(items...)
	if err != nil {
		return nil, err
	}

	clear, err := elem.New("button").With(".danger#clear",
		elem.Attr{Key: "onclick", Value: "clearList()"},
		elem.Attr{Key: "disabled", Value: true},
	)
	if err != nil {
		return nil, err
	}
	clear, err = clear.Add(elem.Text("Clear"))
	if err != nil {
		return nil, err
	}

	body, err := elem.New("body").Add(heading, elem.New("hr"), list, clear)
	if err != nil {
		return nil, err
	}
	return elem.New("html").Add(body)
}
