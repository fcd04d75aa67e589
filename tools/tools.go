// Package tools implements the debug utilities reachable through the admin
// AJAX endpoint. The registry is a fixed mapping of tool names to handlers;
// it is built once at startup and never mutated afterwards.
package tools

import (
	"beforeafter/core"
	"beforeafter/service"
	"fmt"
	"sort"
)

// Tool executes a named action against a string payload. Implementations
// return a JSON-serializable result or an error whose message is surfaced in
// the failure envelope.
type Tool interface {
	Run(action string, payload map[string]string) (any, error)
}

// Deps carries the collaborators the individual tools work against.
type Deps struct {
	Settings *service.SettingsService
	Gallery  *service.GalleryService
	Cache    *core.RenderCache
	Rewrites *core.RewriteRules
	Errors   *core.ErrorLogger
}

// Registry maps tool names to their handlers.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry builds the fixed tool table.
func NewRegistry(deps Deps) *Registry {
	return &Registry{tools: map[string]Tool{
		"rewrite": &rewriteTool{settings: deps.Settings, gallery: deps.Gallery, rules: deps.Rewrites},
		"cache":   &cacheTool{cache: deps.Cache},
		"sysinfo": &sysinfoTool{gallery: deps.Gallery},
		"demo":    &demoTool{settings: deps.Settings, gallery: deps.Gallery, rules: deps.Rewrites},
		"options": &optionsTool{settings: deps.Settings},
		"logs":    &logsTool{errors: deps.Errors},
	}}
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch looks up the named tool and forwards the action and payload to it.
// An unregistered name fails without invoking anything; a panicking handler
// is caught and converted into an error carrying the panic message.
func (r *Registry) Dispatch(tool, action string, payload map[string]string) (result any, err error) {
	t, ok := r.tools[tool]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownTool, tool)
	}

	defer func() {
		if rec := recover(); rec != nil {
			core.LogErrorWithDetail("DebugTools", fmt.Sprintf("tool %s panicked", tool), fmt.Sprintf("%v", rec))
			result = nil
			err = fmt.Errorf("tool %s: %v", tool, rec)
		}
	}()

	return t.Run(action, payload)
}

func unknownAction(tool, action string) error {
	return core.NewToolError(tool, fmt.Sprintf("unknown action %q for tool %s", action, tool))
}
