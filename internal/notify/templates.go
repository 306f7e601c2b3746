package notify

import (
	"embed"
	"fmt"
	"sync"

	"github.com/aymerick/raymond"
)

//go:embed templates/*.hbs
var templateFS embed.FS

var (
	templateMu    sync.Mutex
	templateCache = map[string]*raymond.Template{}
)

// render executes templates/<name>.hbs with data. Parsed templates are cached.
func render(name string, data map[string]any) (string, error) {
	tmpl, err := load(name)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return out, nil
}

func load(name string) (*raymond.Template, error) {
	templateMu.Lock()
	defer templateMu.Unlock()

	if tmpl, ok := templateCache[name]; ok {
		return tmpl, nil
	}

	src, err := templateFS.ReadFile("templates/" + name + ".hbs")
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	tmpl, err := raymond.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	templateCache[name] = tmpl
	return tmpl, nil
}
