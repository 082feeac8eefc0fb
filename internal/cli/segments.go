package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"vidpress/internal/ports/adapters/claudecli"
	"vidpress/internal/segments"
	"vidpress/internal/timecode"
)

func newSegmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segments",
		Short: "Show the current segment table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			segs, err := segments.ReadTableFile(filepath.Join(cfg.WorkDir, claudecli.TableName))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSegmentTable(segs))
			return nil
		},
	}
}

func renderSegmentTable(segs []segments.Segment) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "From", "To", "Duration", "File", "Description"})

	for i, s := range segs {
		dur := "?"
		if d, err := timecode.Duration(s.Start, s.End); err == nil {
			dur = timecode.Format(d)
		}
		tw.AppendRow(table.Row{i + 1, s.Start, s.End, dur, s.File, s.Description})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}
