package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Manage authentication with the passport backend.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the passport backend",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and forget the stored session",
	RunE:  runLogout,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account on the passport backend",
	RunE:  runSignup,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session is stored",
	RunE:  runStatus,
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(statusCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	_, sess, client, err := bootstrap()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	passwordBytes, _ := term.ReadPassword(int(syscall.Stdin))
	password := string(passwordBytes)
	fmt.Println()

	fmt.Println("Logging in...")
	token, err := client.Login(context.Background(), username, password)
	if err != nil {
		return err
	}
	if err := sess.Login(token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Println("Logged in successfully.")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	_, sess, _, err := bootstrap()
	if err != nil {
		return err
	}

	if !sess.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := sess.Logout(); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	_, sess, client, err := bootstrap()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	passwordBytes, _ := term.ReadPassword(int(syscall.Stdin))
	password := string(passwordBytes)
	fmt.Println()

	fmt.Print("Confirm Password: ")
	confirmBytes, _ := term.ReadPassword(int(syscall.Stdin))
	confirm := string(confirmBytes)
	fmt.Println()

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println("Creating account...")
	token, err := client.Signup(context.Background(), username, password)
	if err != nil {
		return err
	}
	if err := sess.Login(token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Println("Account created and logged in.")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, sess, _, err := bootstrap()
	if err != nil {
		return err
	}

	fmt.Printf("Server: %s\n", cfg.ServerURL)
	if sess.IsAuthenticated() {
		fmt.Println("Session: logged in")
	} else {
		fmt.Println("Session: logged out")
	}
	return nil
}
