package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/klabast/wb-services/calendar-views/internal/app"
)

func newHashPasswordCommand(opts *rootOptions) *cobra.Command {
	var overwrite, insecureUnmask bool
	var authFile string
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Create an auth file with a hashed password (Argon2id)",
		Long: `Creates an auth file with a hashed password (Argon2id) for private mode.

The file is written to --auth-file, else to auth_file from the config file or
the AUTH_FILE environment variable, else to auth.secret next to the binary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if authFile == "" {
				cfg, err := app.LoadConfig(opts.configFile)
				if err != nil {
					return err
				}
				authFile = cfg.AuthFile
			}
			path, err := app.AuthFilePath(authFile)
			if err != nil {
				return err
			}
			return hashPassword(cmd, path, overwrite, insecureUnmask)
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing auth file without asking")
	cmd.Flags().BoolVar(&insecureUnmask, "insecure-unmask-password", false, "Show password as plain text (INSECURE!)")
	cmd.Flags().StringVar(&authFile, "auth-file", "", "Path to auth file")
	return cmd
}

func hashPassword(cmd *cobra.Command, path string, overwrite, insecureUnmask bool) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "Enter username: ")
	username, err := readLine(in)
	if err != nil {
		return fmt.Errorf("error reading username: %w", err)
	}
	if username == "" {
		return errors.New("username cannot be empty")
	}

	var password, passwordConfirm string
	if insecureUnmask {
		fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: Password will be visible on screen!")
		fmt.Fprint(out, "Enter password:   ")
		if password, err = readLine(in); err != nil {
			return fmt.Errorf("error reading password: %w", err)
		}
		fmt.Fprint(out, "Confirm password: ")
		if passwordConfirm, err = readLine(in); err != nil {
			return fmt.Errorf("error reading password confirmation: %w", err)
		}
	} else {
		password = readPasswordWithMask("Enter password:   ")
		passwordConfirm = readPasswordWithMask("Confirm password: ")
	}

	if password == "" {
		return errors.New("password cannot be empty")
	}
	if password != passwordConfirm {
		return errors.New("passwords do not match")
	}

	return app.CreateAuthFile(path, username, password, overwrite, in, out)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPasswordWithMask reads password input and displays asterisks
func readPasswordWithMask(prompt string) string {
	fmt.Print(prompt)

	oldState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		// Fallback to hidden input if we can't set raw mode
		password, _ := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		return string(password)
	}
	defer term.Restore(int(syscall.Stdin), oldState)

	if _, err := term.MakeRaw(int(syscall.Stdin)); err != nil {
		password, _ := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		return string(password)
	}

	var password []byte
	reader := bufio.NewReader(os.Stdin)

	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			break
		}

		switch char {
		case '\n', '\r': // Enter key
			fmt.Print("\r\n")
			return string(password)
		case 127, 8: // Backspace or Delete
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Print("\b \b")
			}
		case 3: // Ctrl+C
			term.Restore(int(syscall.Stdin), oldState)
			fmt.Println()
			os.Exit(1)
		default:
			// Only accept printable characters
			if char >= 32 && char <= 126 {
				password = append(password, byte(char))
				fmt.Print("*")
			}
		}
	}

	fmt.Println()
	return string(password)
}
