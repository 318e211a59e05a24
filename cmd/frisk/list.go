package main

import (
	"github.com/spf13/cobra"

	"github.com/frisklabs/frisk/items"
	"github.com/frisklabs/frisk/models"
	"github.com/frisklabs/frisk/queues"
	"github.com/frisklabs/frisk/search"
	"github.com/frisklabs/frisk/util/pagination"
)

func cmdList(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entities",
	}

	cmd.AddCommand(cmdListQueues(a))
	cmd.AddCommand(cmdGetQueue(a))
	cmd.AddCommand(cmdListItems(a))
	cmd.AddCommand(cmdSearchItems(a))

	return cmd
}

func cmdGetQueue(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "queue <id>",
		Short: "Show a single review queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.resolveDirectory(cmd)
			if err != nil {
				return err
			}

			s, err := queues.NewService(a.factory, pagination.NewTokenStore(), dir, a.logs)
			if err != nil {
				return err
			}

			queue, err := s.GetQueue(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := OutputSingle[models.Queue]()
			defer out.Done()
			out.Emit(queue)

			return nil
		},
	}
}

func cmdListQueues(a *app) *cobra.Command {
	var (
		size int
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "queues",
		Short: "List review queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.resolveDirectory(cmd)
			if err != nil {
				return err
			}

			s, err := queues.NewService(a.factory, pagination.NewTokenStore(), dir, a.logs)
			if err != nil {
				return err
			}

			out := OutputMultiple[models.Queue]()
			defer out.Done()

			req := queues.Request{Size: pageSizeOrDefault(a, size)}
			for {
				page, err := s.GetQueues(cmd.Context(), req)
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

	cmd.Flags().IntVar(&size, "size", 0, "Page size")
	cmd.Flags().BoolVar(&all, "all", false, "Keep loading more pages until the chain is exhausted")

	return cmd
}

func cmdListItems(a *app) *cobra.Command {
	var (
		queueID string
		size    int
		all     bool
		order   string
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List items in a review queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.resolveDirectory(cmd)
			if err != nil {
				return err
			}

			s, err := items.NewService(a.factory, pagination.NewTokenStore(), dir, a.logs)
			if err != nil {
				return err
			}

			req := items.Request{
				QueueID: queueID,
				Size:    pageSizeOrDefault(a, size),
			}
			if order != "" {
				field, dir, err := pagination.SplitOrderByParam(order)
				if err != nil {
					return err
				}
				req.SortingField = field
				req.SortingOrder = dir
			}

			out := OutputMultiple[models.Item]()
			defer out.Done()

			for {
				page, err := s.GetQueueItems(cmd.Context(), req)
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

	cmd.Flags().StringVar(&queueID, "queue", "", "Queue id to list items for")
	cmd.Flags().IntVar(&size, "size", 0, "Page size")
	cmd.Flags().BoolVar(&all, "all", false, "Keep loading more pages until the chain is exhausted")
	cmd.Flags().StringVar(&order, "order", "", "Order records by the specified field. Should be of the form \"field DESC|ASC\".")
	_ = cmd.MarkFlagRequired("queue")

	return cmd
}

func cmdSearchItems(a *app) *cobra.Command {
	var (
		queueID   string
		analystID string
		size      int
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search items across queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.resolveDirectory(cmd)
			if err != nil {
				return err
			}

			s, err := search.NewService(a.factory, pagination.NewTokenStore(), dir, a.logs)
			if err != nil {
				return err
			}

			out := OutputMultiple[models.Item]()
			defer out.Done()

			req := search.Request{
				QueueID:   queueID,
				AnalystID: analystID,
				Size:      pageSizeOrDefault(a, size),
			}
			for {
				page, err := s.SearchItems(cmd.Context(), req)
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

	cmd.Flags().StringVar(&queueID, "queue", "", "Only items in the specified queue")
	cmd.Flags().StringVar(&analystID, "analyst", "", "Only items locked or decided by the specified analyst")
	cmd.Flags().IntVar(&size, "size", 0, "Page size")
	cmd.Flags().BoolVar(&all, "all", false, "Keep loading more pages until the chain is exhausted")

	return cmd
}

func pageSizeOrDefault(a *app, size int) int {
	if size > 0 {
		return size
	}

	return a.cfg.GetRoot().Console.DefaultPageSizeOrDefault()
}
