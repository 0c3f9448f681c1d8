package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tkarpov/warroom/internal/render"
)

func cmdRender() *cobra.Command {
	var dev bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON payload to the terminal the way the bot would embed it",
		Long: `Reads a JSON payload from the given file (or stdin when no file is given)
and prints the pages the bot would produce for it. Useful for checking how an
endpoint's response will look without talking to Discord.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrapf(err, "failed to open %s", args[0])
				}
				defer f.Close()
				in = f
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return errors.Wrap(err, "failed to read payload")
			}

			var payload interface{}
			if err := json.Unmarshal(raw, &payload); err != nil {
				return errors.Wrap(err, "payload is not valid JSON")
			}

			policy := cfg.GetRoot().GetRenderPolicy()
			out := render.Render(payload, policy, render.Options{Title: "Preview"})

			pages := out.Pretty
			if dev {
				pages = out.Dev
			}

			printPages(pages)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dev, "dev", false, "Show the raw developer rendering instead of the styled one")

	return cmd
}

func printPages(pages render.Pages) {
	title := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	for i, p := range pages {
		if i > 0 {
			fmt.Println()
		}
		title.Printf("== %s (page %d/%d) ==\n", p.Title, i+1, len(pages))
		if p.Description != "" {
			fmt.Println(p.Description)
		}
		for _, f := range p.Fields {
			fmt.Printf("%s: %s\n", color.GreenString(f.Name), f.Value)
		}
		if p.Footer != "" {
			dim.Println(p.Footer)
		}
	}
}
