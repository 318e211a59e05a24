package main

import (
	"github.com/spf13/cobra"

	"github.com/frisklabs/frisk/linkanalysis"
	"github.com/frisklabs/frisk/models"
	"github.com/frisklabs/frisk/util/pagination"
)

func cmdLinkAnalysis(a *app) *cobra.Command {
	var (
		itemID string
		field  string
		size   int
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "link-analysis",
		Short: "List orders linked to an item through a shared analysis field",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.resolveDirectory(cmd)
			if err != nil {
				return err
			}

			s, err := linkanalysis.NewService(a.factory, pagination.NewTokenStore(), dir, a.logs)
			if err != nil {
				return err
			}

			out := OutputMultiple[models.LinkAnalysisItem]()
			defer out.Done()

			req := linkanalysis.Request{
				ItemID: itemID,
				Field:  linkanalysis.AnalysisField(field),
				Size:   sizeOrLinkAnalysisDefault(a, size),
			}
			for {
				page, err := s.GetLinkedItems(cmd.Context(), req)
				if err != nil {
					return err
				}
				out.EmitAll(page.Data)

				if !all || !page.CanLoadMore {
					return nil
				}
				req.ShouldLoadMore = true
			}
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "Item id to run link analysis for")
	cmd.Flags().StringVar(&field, "field", string(linkanalysis.FieldCreditCard), "Analysis field: creditCard, email, billingAddress, shippingAddress or deviceId")
	cmd.Flags().IntVar(&size, "size", 0, "Page size")
	cmd.Flags().BoolVar(&all, "all", false, "Keep loading more pages until the chain is exhausted")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func sizeOrLinkAnalysisDefault(a *app, size int) int {
	if size > 0 {
		return size
	}

	return a.cfg.GetRoot().Console.LinkAnalysisPageSizeOrDefault()
}
