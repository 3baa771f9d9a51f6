package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"catalog-backend/internal/auth"

	"github.com/spf13/cobra"
)

var hashPasscodeCmd = &cobra.Command{
	Use:   "hash-passcode [passcode]",
	Short: "Print a bcrypt hash to use as ADMIN_PASSCODE",
	Long:  `Print a bcrypt hash of the admin passcode. Without an argument the passcode is read from the first line of stdin.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var passcode string
		if len(args) == 1 {
			passcode = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("passcode is required")
			}
			passcode = strings.TrimRight(line, "\r\n")
		}
		if strings.TrimSpace(passcode) == "" {
			return errors.New("passcode is required")
		}

		hash, err := auth.HashPasscode(passcode)
		if err != nil {
			return fmt.Errorf("failed to hash passcode: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
