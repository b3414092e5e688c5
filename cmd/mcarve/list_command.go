package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mcarve/internal/checkpoint"
	"mcarve/internal/locale"
	"mcarve/internal/workflow"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects with saved checkpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := ctx.catalog()
			return ctx.withStore(func(store *checkpoint.Store) error {
				docs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(docs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), catalog.Get(locale.KeyNoProjects))
					return nil
				}

				sort.Slice(docs, func(i, j int) bool { return docs[i].Project < docs[j].Project })

				headers := []string{"Project", "Mode", "Data", "State", "Tiles", "Batches", "Regions", "Updated"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft}
				rows := make([][]string, 0, len(docs))
				for _, doc := range docs {
					rows = append(rows, []string{
						doc.Project,
						string(doc.Mode),
						dataKindLabel(catalog, doc.DataKind),
						string(workflow.StateOf(doc)),
						strconv.Itoa(doc.ReprojectCursor),
						strconv.Itoa(doc.GenerateCursor),
						strconv.Itoa(doc.RegionCount),
						humanize.Time(doc.UpdatedAt),
					})
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}
}

func dataKindLabel(catalog locale.Catalog, kind checkpoint.DataKind) string {
	if kind == checkpoint.KindDSM {
		return catalog.Get(locale.KeyDataDSM)
	}
	return catalog.Get(locale.KeyDataDEM)
}
