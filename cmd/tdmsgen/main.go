// Command tdmsgen reads a JSON file/group/channel descriptor and writes the
// TDMS file it describes: a declaration segment, a property segment per
// named description/unit, and a channel-data segment per channel carrying
// values.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/nireeson/tdmsgo/internal/pool"
	"github.com/nireeson/tdmsgo/model"
	"github.com/nireeson/tdmsgo/segment"
	"github.com/nireeson/tdmsgo/tdstype"
)

var (
	inputPath  string
	outputPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tdmsgen",
		Short: "Generates a TDMS file from a JSON descriptor.",
		Long: `tdmsgen is a CLI tool that reads a JSON descriptor of a TDMS
file/group/channel hierarchy and sample values, and writes the
corresponding sequence of TDMS segments to disk.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the JSON descriptor (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the output .tdms file (required)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if inputPath == "" {
		return fmt.Errorf("tdmsgen: --input is required")
	}
	if outputPath == "" {
		return fmt.Errorf("tdmsgen: --output is required")
	}

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Prefix = fmt.Sprintf("Generating %s... ", outputPath)
	spin.Start()
	defer spin.Stop()

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("tdmsgen: reading descriptor: %w", err)
	}

	var desc descriptor
	if err := json.Unmarshal(raw, &desc); err != nil {
		return fmt.Errorf("tdmsgen: parsing descriptor: %w", err)
	}

	out := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(out)

	if err := build(out, desc); err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("tdmsgen: writing %s: %w", outputPath, err)
	}

	spin.Stop()
	fmt.Printf("Wrote %s (%d bytes)\n", outputPath, out.Len())

	return nil
}

// build assembles every segment the descriptor describes into out, in
// order: the declaration segment first, then a property segment per
// non-empty description/unit, then a channel-data segment per channel that
// carries values.
func build(out *pool.ByteBuffer, desc descriptor) error {
	file := model.NewFile(model.WithFileDescription(desc.Description))

	type pending struct {
		channel *model.Channel
		typ     tdstype.Type
		values  []float64
	}

	var channels []pending

	for _, gd := range desc.Groups {
		group, err := file.AddGroup(gd.Name, model.WithGroupDescription(gd.Description))
		if err != nil {
			return fmt.Errorf("tdmsgen: adding group %q: %w", gd.Name, err)
		}

		for _, cd := range gd.Channels {
			typ, err := resolveType(cd.Type)
			if err != nil {
				return err
			}

			channel, err := group.AddChannel(cd.Name, typ,
				model.WithChannelDescription(cd.Description),
				model.WithChannelUnit(cd.Unit),
			)
			if err != nil {
				return fmt.Errorf("tdmsgen: adding channel %q: %w", cd.Name, err)
			}

			channels = append(channels, pending{channel: channel, typ: typ, values: cd.Values})
		}
	}

	if err := writeSegment(out, func(buf []byte) (int, error) { return segment.Declaration(buf, file) }); err != nil {
		return err
	}

	if desc.Description != "" {
		name, value := "Description", []byte(desc.Description)
		if err := writeSegment(out, func(buf []byte) (int, error) {
			return segment.AddPropertyToFile(buf, file, name, tdstype.String, value)
		}); err != nil {
			return err
		}
	}

	for _, g := range file.Groups() {
		if g.Description() == "" {
			continue
		}

		desc, group := g.Description(), g
		if err := writeSegment(out, func(buf []byte) (int, error) {
			return segment.AddPropertyToGroup(buf, group, "Description", tdstype.String, []byte(desc))
		}); err != nil {
			return err
		}
	}

	for _, p := range channels {
		if p.channel.Description() != "" {
			ch, desc := p.channel, []byte(p.channel.Description())
			if err := writeSegment(out, func(buf []byte) (int, error) {
				return segment.AddPropertyToChannel(buf, ch, "Description", tdstype.String, desc)
			}); err != nil {
				return err
			}
		}

		if p.channel.Unit() != "" {
			ch, unit := p.channel, []byte(p.channel.Unit())
			if err := writeSegment(out, func(buf []byte) (int, error) {
				return segment.AddPropertyToChannel(buf, ch, "unit_string", tdstype.String, unit)
			}); err != nil {
				return err
			}
		}

		if len(p.values) == 0 {
			continue
		}

		values, err := encodeValues(p.typ, p.values)
		if err != nil {
			return err
		}

		ch, n := p.channel, uint64(len(p.values))
		if err := writeSegment(out, func(buf []byte) (int, error) {
			return segment.WriteChannelData(buf, ch, values, n)
		}); err != nil {
			return err
		}
	}

	return nil
}

// writeSegment calls build first in size-query mode, grows out by the
// reported size, then calls build again to fill it in place.
func writeSegment(out *pool.ByteBuffer, build func(buf []byte) (int, error)) error {
	size, err := build(nil)
	if err != nil {
		return err
	}

	start := out.Len()
	out.ExtendOrGrow(size)

	n, err := build(out.Slice(start, start+size))
	if err != nil {
		return err
	}
	if n != size {
		return fmt.Errorf("tdmsgen: segment builder reported %d bytes but wrote %d", size, n)
	}

	return nil
}
