// Package ui implements a command-line user interface using [tea].
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/linuxsys/internal/transfer"
)

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	transferHandler *transfer.Handler
	program         *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler].
func NewHandler(ctx context.Context, cancel context.CancelFunc, transferHandler *transfer.Handler) *Handler {
	handler := &Handler{
		transferHandler: transferHandler,
	}

	model := NewTeaModel(handler, transferHandler, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]).
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// Quit asks the running [tea.Program] to terminate, e.g. when the transfer
// has finished before the user pressed a key.
func (uiHandler *Handler) Quit() {
	uiHandler.program.Quit()
}
