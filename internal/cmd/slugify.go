package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/tagfield/internal/slug"
)

// RunSlugify normalizes each input into tag form and prints one result per
// line. With join set it prints a single comma-separated value instead,
// de-duplicated like the interactive field. With no args it reads lines
// from in.
func RunSlugify(in io.Reader, out io.Writer, args []string, join bool) error {
	inputs := args
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}

	if join {
		tags := slug.Decode(strings.Join(inputs, ","))
		fmt.Fprintln(out, slug.Encode(tags))
		return nil
	}

	for _, input := range inputs {
		fmt.Fprintln(out, slug.Normalize(input))
	}
	return nil
}

// SlugifyCmd returns the `tagfield slugify` command.
func SlugifyCmd() *cobra.Command {
	var join bool
	cmd := &cobra.Command{
		Use:   "slugify [text...]",
		Short: "Normalize text into tag form",
		RunE: func(_ *cobra.Command, args []string) error {
			return RunSlugify(os.Stdin, os.Stdout, args, join)
		},
	}
	cmd.Flags().BoolVarP(&join, "join", "j", false, "emit one comma-separated value, de-duplicated")
	return cmd
}
