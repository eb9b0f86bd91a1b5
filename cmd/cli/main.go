// Admin tool for creating user accounts from the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/swiftflow/swiftflow/config"
	"github.com/swiftflow/swiftflow/infra"
	userrepo "github.com/swiftflow/swiftflow/infra/repository/user"
	usersvc "github.com/swiftflow/swiftflow/pkg/service/user"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] != "create-user" {
		fmt.Println("Usage: cli create-user")
		os.Exit(1)
	}
	if err := createUser(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func createUser() error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return err
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return err
	}
	if err := userrepo.Migrate(db); err != nil {
		return err
	}
	svc := usersvc.New(userrepo.NewRepository(db), slog.Default())

	reader := bufio.NewReader(os.Stdin)
	name := prompt(reader, "Name")
	email := prompt(reader, "Email")
	ageStr := prompt(reader, "Age")
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return fmt.Errorf("invalid age: %q", ageStr)
	}
	gender := prompt(reader, "Gender (male/female/other/prefer-not-to-say)")
	country := prompt(reader, "Country")

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return err
	}

	u, err := svc.Register(context.Background(), usersvc.RegisterParams{
		Name:     name,
		Email:    email,
		Password: string(password),
		Age:      age,
		Gender:   gender,
		Country:  country,
	})
	if err != nil {
		return err
	}
	color.Green("User created: %s (%s)", u.Name, u.ID)
	return nil
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
