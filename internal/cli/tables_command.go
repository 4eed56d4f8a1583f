package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"quaver.click/internal/engine"
	"quaver.click/internal/tables"
)

// tableKinds are the enumeration tables the tables command can list
var tableKinds = []string{"sample-types", "channel-configs", "distance-models", "context-attributes"}

// tableEntries returns the name/value pairs of one enumeration table
func tableEntries(kind string) ([][2]string, error) {
	var entries [][2]string
	add := func(name string, value int32) {
		entries = append(entries, [2]string{name, fmt.Sprintf("0x%04X", value)})
	}

	switch kind {
	case "sample-types":
		for _, name := range tables.SampleTypeNames() {
			v, _ := tables.SampleType(name)
			add(name, int32(v))
		}
	case "channel-configs":
		for _, name := range tables.ChannelConfigNames() {
			v, _ := tables.ChannelConfig(name)
			add(name, int32(v))
		}
	case "distance-models":
		for _, name := range tables.DistanceModelNames() {
			v, _ := tables.DistanceModel(name)
			add(name, int32(v))
		}
	case "context-attributes":
		for _, name := range tables.ContextAttributeNames() {
			v, _ := tables.ContextAttribute(name)
			add(name, v)
		}
	default:
		return nil, fmt.Errorf("unknown table %q, must be one of: %s", kind, strings.Join(tableKinds, ", "))
	}
	return entries, nil
}

func newTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "tables [KIND]",
		Short:     "List the engine's named value tables",
		Long:      "List the names the adapters accept for sample types, channel configurations, distance models and context attributes, with the engine value each maps to.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tableKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}

			kinds := tableKinds
			if len(args) == 1 {
				kinds = args
			}

			t := cli.newTable(cmd.OutOrStdout(), "TABLE", "NAME", "VALUE")
			for _, kind := range kinds {
				entries, err := tableEntries(kind)
				if err != nil {
					return err
				}
				for _, e := range entries {
					t.row(kind, e[0], e[1])
				}
			}
			return t.flush()
		},
	}
}

func newPresetsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets [NAME]",
		Short: "List reverb presets or show one preset's properties",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				names := tables.ReverbPresetNames()
				if asJSON {
					return writeJSON(out, names)
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			props, ok := tables.ReverbPreset(args[0])
			if !ok {
				return fmt.Errorf("unknown reverb preset %q", args[0])
			}
			if asJSON {
				return writeJSON(out, props)
			}
			t := cli.newTable(out, "PROPERTY", "VALUE")
			for _, row := range reverbRows(props) {
				t.row(row[0], row[1])
			}
			return t.flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 4, 32)
}

func formatVector(v engine.Vector3) string {
	parts := make([]string, 3)
	for i, c := range tables.FromVector3(v) {
		parts[i] = formatFloat(c)
	}
	return strings.Join(parts, " ")
}

func reverbRows(p engine.ReverbProperties) [][2]string {
	return [][2]string{
		{"density", formatFloat(p.Density)},
		{"diffusion", formatFloat(p.Diffusion)},
		{"gain", formatFloat(p.Gain)},
		{"gain_hf", formatFloat(p.GainHF)},
		{"gain_lf", formatFloat(p.GainLF)},
		{"decay_time", formatFloat(p.DecayTime)},
		{"decay_hf_ratio", formatFloat(p.DecayHFRatio)},
		{"decay_lf_ratio", formatFloat(p.DecayLFRatio)},
		{"reflections_gain", formatFloat(p.ReflectionsGain)},
		{"reflections_delay", formatFloat(p.ReflectionsDelay)},
		{"reflections_pan", formatVector(p.ReflectionsPan)},
		{"late_reverb_gain", formatFloat(p.LateReverbGain)},
		{"late_reverb_delay", formatFloat(p.LateReverbDelay)},
		{"late_reverb_pan", formatVector(p.LateReverbPan)},
		{"echo_time", formatFloat(p.EchoTime)},
		{"echo_depth", formatFloat(p.EchoDepth)},
		{"modulation_time", formatFloat(p.ModulationTime)},
		{"modulation_depth", formatFloat(p.ModulationDepth)},
		{"air_absorption_gain_hf", formatFloat(p.AirAbsorptionGainHF)},
		{"hf_reference", formatFloat(p.HFReference)},
		{"lf_reference", formatFloat(p.LFReference)},
		{"room_rolloff_factor", formatFloat(p.RoomRolloffFactor)},
		{"decay_hf_limit", strconv.FormatBool(p.DecayHFLimit)},
	}
}

func newAttrsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attrs",
		Short: "Show the context attribute list built from the configuration",
		Long:  "Show the context attribute list built from the configuration, in the order the engine receives it, including the terminating pair.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}

			attrs, err := cli.config.Attributes()
			if err != nil {
				return err
			}

			names := make(map[int32]string)
			for _, name := range tables.ContextAttributeNames() {
				key, _ := tables.ContextAttribute(name)
				names[key] = name
			}

			t := cli.newTable(cmd.OutOrStdout(), "NAME", "KEY", "VALUE")
			for i, a := range attrs {
				name := names[a.Attribute]
				if i == len(attrs)-1 && a == engine.AttributesEnd() {
					name = "(end)"
				}
				t.row(name, fmt.Sprintf("0x%04X", a.Attribute), strconv.Itoa(int(a.Value)))
			}

			if model, err := cli.config.Distance(); err == nil {
				name, _ := tables.DistanceModelName(model)
				t.row("distance model", fmt.Sprintf("0x%04X", int32(model)), name)
			}
			if _, ok := cli.config.Reverb(); ok {
				t.row("reverb preset", "", cli.config.ReverbPreset)
			}
			return t.flush()
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
