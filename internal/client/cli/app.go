// Package cli implements the interactive terminal client for the task
// server: account registration and login, then owner-scoped task commands
// over the REST API.
package cli

import (
	"bufio"
	"context"
	"os"
)

type App struct {
	client *Client
	reader *bufio.Reader
}

func NewApp(serverAddr string) *App {
	return &App{
		client: NewClient(serverAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.IsLoggedIn()
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	statusFn := func() string {
		if a.isLoggedIn() {
			return "logged in"
		}
		return "anonymous"
	}
	runREPL(ctx, a, statusFn, scanner)
}
