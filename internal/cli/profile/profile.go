package profile

import (
	"errors"
	"fmt"

	"github.com/plenoapp/pleno/internal/cli"
	"github.com/plenoapp/pleno/internal/keyring"
)

// requirePIN enforces the profile lock when a PIN is stored in the OS
// keyring. No stored PIN means the profile is unlocked.
func requirePIN(given string) error {
	stored, err := keyring.GetPIN()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return err
	}

	if given == "" {
		return fmt.Errorf("profile is locked, pass --pin")
	}
	if given != stored {
		return fmt.Errorf("incorrect PIN")
	}
	return nil
}

type ProfileShowCmd struct {
	Pin string `help:"Profile lock PIN, if one is set."`
}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	if err := requirePIN(c.Pin); err != nil {
		return err
	}

	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render("Profile:"))
	fmt.Printf("  Name:              %s\n", orUnset(profile.Name))
	fmt.Printf("  Email:             %s\n", orUnset(profile.Email))
	fmt.Printf("  Phone:             %s\n", orUnset(profile.Phone))
	fmt.Printf("  Birth date:        %s\n", orUnset(profile.BirthDate))
	fmt.Printf("  Gender:            %s\n", orUnset(profile.Gender))
	fmt.Printf("  Emergency contact: %s\n", orUnset(profile.EmergencyContact))

	return nil
}

func orUnset(s string) string {
	if s == "" {
		return cli.MutedStyle.Render("(not set)")
	}
	return s
}

type ProfileSetCmd struct {
	Pin              string `help:"Profile lock PIN, if one is set."`
	Name             string `help:"Display name."`
	Email            string `help:"Contact email."`
	Phone            string `help:"Contact phone."`
	BirthDate        string `help:"Birth date (YYYY-MM-DD)."`
	Gender           string `help:"Gender."`
	EmergencyContact string `help:"Emergency contact."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	if err := requirePIN(c.Pin); err != nil {
		return err
	}

	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if c.Name != "" {
		profile.Name = c.Name
	}
	if c.Email != "" {
		profile.Email = c.Email
	}
	if c.Phone != "" {
		profile.Phone = c.Phone
	}
	if c.BirthDate != "" {
		profile.BirthDate = c.BirthDate
	}
	if c.Gender != "" {
		profile.Gender = c.Gender
	}
	if c.EmergencyContact != "" {
		profile.EmergencyContact = c.EmergencyContact
	}

	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Println("Updated profile")
	return nil
}

type ProfilePinSetCmd struct {
	Pin string `arg:"" help:"New PIN."`
}

func (c *ProfilePinSetCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}

	if err := keyring.SetPIN(c.Pin); err != nil {
		return err
	}

	fmt.Println("Profile PIN set")
	return nil
}

type ProfilePinClearCmd struct {
	Pin string `help:"Current PIN."`
}

func (c *ProfilePinClearCmd) Run(ctx *cli.Context) error {
	if err := requirePIN(c.Pin); err != nil {
		return err
	}

	if err := keyring.DeletePIN(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No PIN was set")
			return nil
		}
		return err
	}

	fmt.Println("Profile PIN cleared")
	return nil
}
