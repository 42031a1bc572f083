package cli

import (
	"context"
	"fmt"
)

// ShowBranding prints the current branding record. The read is
// stale-while-revalidate: cached values print immediately and a background
// refresh picks up upstream changes for the next read.
func (a *App) ShowBranding(ctx context.Context) {
	rec := a.cache.Current()

	fmt.Printf("Company: %s (%s)\n", rec.DisplayName(), rec.ShortDisplayName())
	if rec.Logo != "" {
		fmt.Printf("Logo: %s\n", rec.Logo)
	}
	if rec.SupportEmail != "" {
		fmt.Printf("Support email: %s\n", rec.SupportEmail)
	}
	if rec.SupportPhone != "" {
		fmt.Printf("Support phone: %s\n", rec.SupportPhone)
	}
	if rec.WhatsappNumber != "" {
		fmt.Printf("WhatsApp: %s (%s)\n", rec.WhatsappNumber, rec.WhatsappLink)
	}
	if rec.Address != "" {
		fmt.Printf("Address: %s\n", rec.Address)
	}
}
