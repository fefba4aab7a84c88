package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Register creates a new account and installs the returned identity.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your display name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if name == "" || email == "" || len(password) == 0 {
		return errors.New("name, email and password are all required")
	}

	result, err := a.client.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	a.setIdentity(result)
	fmt.Printf("Registered as %s (%s)\n", result.User.Name, result.User.Email)
	return nil
}

// Login authenticates and installs the returned identity, replacing any
// prior one.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.setIdentity(result)
	fmt.Printf("Logged in as %s\n", result.User.Name)
	return nil
}

func (a *App) Logout() error {
	if a.current == nil {
		fmt.Println("Not logged in")
		return nil
	}
	a.clearIdentity()
	fmt.Println("Logged out")
	return nil
}

func (a *App) Whoami() error {
	if a.current == nil {
		fmt.Println("Browsing as guest")
		return nil
	}
	fmt.Printf("%s <%s> (id %s)\n", a.current.User.Name, a.current.User.Email, a.current.User.ID)
	return nil
}
