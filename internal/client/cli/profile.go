package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rmsplatform/rms/internal/client/authstore"
)

// WhoAmI prints the locally stored profile, refreshing it from the server
// when reachable. The local copy is authoritative for display; a failed
// refresh is not an error.
func (a *App) WhoAmI(ctx context.Context) {
	if remote, err := a.apiClient.Profile(ctx); err == nil {
		a.auth.UpdateUser(ctx, authstore.UserPatch{
			FirstName: &remote.FirstName,
			LastName:  &remote.LastName,
			Email:     &remote.Email,
			Role:      &remote.Role,
			Avatar:    &remote.Avatar,
		})
	}

	u := a.auth.User(ctx)
	if u == nil {
		fmt.Println("Not logged in")
		return
	}

	fmt.Printf("%s <%s>\n", u.FullName(), u.Email)
	fmt.Printf("Role: %s\n", u.Role)
	if u.ReferralCode != "" {
		fmt.Printf("Referral code: %s\n", u.ReferralCode)
	}
}

// UpdateProfile prompts for new name fields (empty input keeps the current
// value), pushes the change to the server, and applies the same partial
// update to local storage, which fires the user-updated event.
func (a *App) UpdateProfile(ctx context.Context) error {
	current := a.auth.User(ctx)
	if current == nil {
		fmt.Println("Not logged in")
		return nil
	}

	firstName, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", current.FirstName), os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", current.LastName), os.Stdout)
	if err != nil {
		return err
	}

	patch := authstore.UserPatch{}
	if firstName != "" {
		patch.FirstName = &firstName
	}
	if lastName != "" {
		patch.LastName = &lastName
	}
	if patch.FirstName == nil && patch.LastName == nil {
		fmt.Println("Nothing to update")
		return nil
	}

	if _, err := a.apiClient.UpdateProfile(ctx, patch); err != nil {
		log.Printf("Update unsuccessful: %s", err.Error())
		return err
	}

	a.auth.UpdateUser(ctx, patch)
	log.Println("Profile updated")
	return nil
}
