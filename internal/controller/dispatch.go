package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownAction is returned by Dispatch for names with no handler.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUsage is returned by Dispatch when arguments do not fit the action.
	ErrUsage = errors.New("invalid arguments")
)

// Handler runs one console action.
type Handler func(ctx context.Context, args []string) error

func (c *Controller) buildActions() map[string]Handler {
	return map[string]Handler{
		"status": noArgs(func(ctx context.Context) { c.CheckStatus(ctx) }),
		"health": noArgs(func(ctx context.Context) { c.PerformHealthCheck(ctx) }),
		"reset":  noArgs(func(context.Context) { c.ShowResetDialog() }),
		"confirm-reset": noArgs(func(ctx context.Context) {
			if !c.ResetDialogOpen() {
				c.warn("No reset pending")
				return
			}
			c.ResetServer(ctx)
		}),
		"cancel-reset": noArgs(func(context.Context) { c.CancelResetDialog() }),
		"select": func(_ context.Context, args []string) error {
			c.SelectFile(strings.Join(args, " "))
			return nil
		},
		"models": noArgs(func(context.Context) { c.ShowModelDialog() }),
		"pick": func(_ context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: pick <model>", ErrUsage)
			}
			c.SelectModelCard(args[0])
			return nil
		},
		"confirm-model": noArgs(func(context.Context) { c.ConfirmModel() }),
		"cancel-model":  noArgs(func(context.Context) { c.CancelModelDialog() }),
		"close":         noArgs(func(context.Context) { c.CloseDialogs() }),
		"transcribe":    noArgs(func(ctx context.Context) { c.StartTranscription(ctx) }),
		"clear-log":     noArgs(func(context.Context) { c.ClearLog() }),
		"monitor": func(ctx context.Context, args []string) error {
			mode := ""
			if len(args) > 0 {
				mode = strings.ToLower(args[0])
			}
			switch mode {
			case "on", "start":
				c.StartMonitoring(ctx)
			case "off", "stop":
				c.StopMonitoring()
			case "":
				if !c.StopMonitoring() {
					c.StartMonitoring(ctx)
				}
			default:
				return fmt.Errorf("%w: monitor [on|off]", ErrUsage)
			}
			return nil
		},
	}
}

// Dispatch runs the handler registered for action.
func (c *Controller) Dispatch(ctx context.Context, action string, args ...string) error {
	handler, ok := c.actions[strings.ToLower(strings.TrimSpace(action))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return handler(ctx, args)
}

// Actions lists the registered action names in sorted order.
func (c *Controller) Actions() []string {
	names := make([]string, 0, len(c.actions))
	for name := range c.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func noArgs(fn func(ctx context.Context)) Handler {
	return func(ctx context.Context, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: takes no arguments", ErrUsage)
		}
		fn(ctx)
		return nil
	}
}
