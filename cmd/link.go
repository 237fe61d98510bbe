package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/flags"
	"github.com/rishabh06704/getdaysleft/internal/log"
	"github.com/rishabh06704/getdaysleft/internal/share"
)

var copyLink bool

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Print the share link for a date",
	Long: `Print the link that opens a countdown to the given date and time.

The link uses share.origin and share.path from the config file.

Examples:
  getdaysleft link --date 2030-01-01
  getdaysleft link --date 2030-01-01 --time 09:30 --copy`,
	Args: cobra.NoArgs,
	RunE: runLink,
}

func init() {
	addTargetFlags(linkCmd)
	linkCmd.Flags().BoolVar(&copyLink, "copy", false, "also copy the link to the clipboard")
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, _ []string) error {
	date, clock, err := targetFromFlags()
	if err != nil {
		return err
	}

	linker := share.Linker{Origin: cfg.Share.Origin, Path: cfg.Share.Path}
	if copyLink {
		linker.Copier = newCopier(flags.New(cfg.Flags), cmd.ErrOrStderr())
	}

	var link string
	if copyLink {
		link, err = linker.Copy(date, clock)
	} else {
		link, err = linker.URL(date, clock)
	}
	if link != "" {
		fmt.Fprintln(cmd.OutOrStdout(), link)
	}
	if err != nil {
		log.ErrorErr(log.CatCLI, "link failed", err)
		if copyLink && link != "" {
			return fmt.Errorf("could not copy link: %w", err)
		}
		return fmt.Errorf("building link: %w", err)
	}
	if copyLink {
		fmt.Fprintln(cmd.ErrOrStderr(), countdown.ToastCopied)
	}
	return nil
}
