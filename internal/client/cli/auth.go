package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/rmsplatform/rms/internal/client/api"
	"github.com/rmsplatform/rms/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email, and password and creates a new
// account. The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.apiClient.Register(ctx, firstName, lastName, email, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	log.Println("Success! You can now log in.")
	return nil
}

// Login prompts for credentials, authenticates against the server, and on
// success persists the token/user pair through the auth store (which applies
// the scope-selection and mirroring rules).
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.apiClient.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
			a.setMode(ModeOffline)
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.auth.SetAuth(ctx, res.Token, res.User)
	a.setMode(ModeOnline)
	log.Printf("Login successful")
	return nil
}

// Logout clears the credential pair from both storage scopes.
func (a *App) Logout(ctx context.Context) error {
	a.auth.ClearAuth(ctx)
	log.Println("Logged out")
	return nil
}
