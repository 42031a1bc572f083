package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if u := a.auth.User(ctx); u != nil {
		s = u.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	// Block the banner on the gate: branding renders from cache instantly
	// on repeat runs, and fresh installs wait at most the gate timeout.
	a.gate.Wait(ctx)
	rec := a.cache.Current()
	log.Printf("Welcome to %s (type 'help' for commands)", rec.DisplayName())

	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Printf("%s %s> ", a.cache.Current().ShortDisplayName(), a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Println("Available commands: whoami, update, branding, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, branding, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)
		case "update":
			a.UpdateProfile(ctx)
		case "branding":
			a.ShowBranding(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
