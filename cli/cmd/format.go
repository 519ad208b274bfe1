package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sv-tools/svfmt/config"
	"github.com/sv-tools/svfmt/format"
	"github.com/sv-tools/svfmt/internal/debug"
	"github.com/sv-tools/svfmt/internal/sourcefs"
)

var (
	writeInPlace bool
	recursive    bool

	formatCmd = &cobra.Command{
		Use:   "format file-or-dir...",
		Short: "Format one or more SystemVerilog source files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("need at least one file or directory argument")
			}

			files, err := resolveArgs(args)
			if err != nil {
				return err
			}

			style, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if columnLimit > 0 {
				style.ColumnLimit = columnLimit
			}
			debug.Dump("style", style)
			debug.Printf("formatting %d file(s)", len(files))

			results, err := format.FormatFiles(context.Background(), files, readFile, style)
			if err != nil {
				return err
			}

			var failed bool
			for _, r := range results {
				for _, e := range r.Errors {
					fmt.Fprintf(os.Stderr, "%s\n", e)
				}
				if writeInPlace {
					if err := os.WriteFile(r.Filename, []byte(r.Output), 0o644); err != nil {
						return err
					}
				} else {
					fmt.Print(r.Output)
				}
				if len(r.Errors) > 0 {
					failed = true
				}
			}
			if failed {
				return errors.New("one or more files had lexical errors")
			}
			return nil
		},
	}
)

func readFile(name string) (string, error) {
	contents, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

// resolveArgs expands any directory argument into the source files it
// contains when --recursive is set, and passes plain file arguments
// through unchanged.
func resolveArgs(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, a)
			continue
		}
		if !recursive {
			return nil, fmt.Errorf("%s is a directory; pass --recursive to scan it", a)
		}
		found, err := sourcefs.Discover(a, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func init() {
	formatCmd.Flags().BoolVarP(&writeInPlace, "inplace", "i", false, "write the formatted output back to each file instead of stdout")
	formatCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "scan directory arguments recursively for source files")
	rootCmd.AddCommand(formatCmd)
}
