package main

import (
	"github.com/spf13/cobra"

	"github.com/frisklabs/frisk/dictionary"
	"github.com/frisklabs/frisk/models"
)

func cmdLookup(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <category> <query>",
		Short: "Run a typeahead dictionary lookup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := dictionary.NewService(a.factory, a.cfg.GetRoot().Console.DictionaryResultLimitOrDefault(), a.logs)
			if err != nil {
				return err
			}

			suggestions, err := s.Lookup(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := OutputMultiple[models.DictionarySuggestion]()
			defer out.Done()
			out.EmitAll(suggestions)

			return nil
		},
	}

	return cmd
}
