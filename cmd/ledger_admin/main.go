// Command ledger_admin prepares credentials for a ledger deployment:
//
//	ledger_admin generate-key                  new admin key and its ADMIN_API_KEY_HASH
//	ledger_admin hash-key <key>                bcrypt hash of an existing admin key
//	ledger_admin issue-token -subject <name>   bearer token signed with JWT_SECRET
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/utils"
)

const usage = `usage:
  ledger_admin generate-key
  ledger_admin hash-key <key>
  ledger_admin issue-token -subject <name> [-ttl 720h]`

func main() {
	if err := run(os.Args[1:], os.Stdout, config.LoadConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, loadConfig func() (*config.Config, error)) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch args[0] {
	case "generate-key":
		key, err := utils.GenerateAdminKey()
		if err != nil {
			return err
		}
		hash, err := utils.HashAdminKey(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "admin key:          %s\nADMIN_API_KEY_HASH: %s\n", key, hash)
		return nil

	case "hash-key":
		if len(args) != 2 {
			return errors.New(usage)
		}
		hash, err := utils.HashAdminKey(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hash)
		return nil

	case "issue-token":
		fs := flag.NewFlagSet("issue-token", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		subject := fs.String("subject", "", "token subject, e.g. the calling service name")
		ttl := fs.Duration("ttl", 30*24*time.Hour, "token lifetime")
		if err := fs.Parse(args[1:]); err != nil {
			return fmt.Errorf("%w\n%s", err, usage)
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		token, err := utils.IssueServiceToken(*subject, cfg.JWTSecret, *ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, token)
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}
