package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"quaver.click/internal/bridge"
	"quaver.click/internal/engine"
	"quaver.click/internal/fileio"
	"quaver.click/internal/formats"
	"quaver.click/internal/journal"
	"quaver.click/internal/loader"
	"quaver.click/internal/tables"
	"quaver.click/internal/tonegen"
)

// fileFactory resolves resources against the configured search paths
func (c *CLI) fileFactory() *fileio.Factory {
	return fileio.New(c.resources, c.configManager.ResourcePaths(c.config), c.config.Extensions)
}

// newLoader wires the adapters the way the engine sees them
func (c *CLI) newLoader(sink bridge.PrimitiveMessageSink) *loader.Loader {
	return &loader.Loader{
		Files:    bridge.NewFileIOFactory(c.fileFactory()),
		Handler:  bridge.NewMessageHandler(sink),
		Decoders: formats.NewDefaultRegistry(),
	}
}

func channelName(c engine.ChannelConfig) string {
	if name, ok := tables.ChannelConfigName(c); ok {
		return name
	}
	return fmt.Sprintf("0x%X", int32(c))
}

func sampleTypeName(t engine.SampleType) string {
	if name, ok := tables.SampleTypeName(t); ok {
		return name
	}
	return fmt.Sprintf("0x%X", int32(t))
}

func formatDuration(frames uint64, rate uint32) string {
	if rate == 0 {
		return "-"
	}
	d := time.Duration(frames) * time.Second / time.Duration(rate)
	return d.Round(time.Millisecond).String()
}

func formatLoop(l engine.LoopPoints) string {
	if !l.Valid() {
		return "-"
	}
	return fmt.Sprintf("%d-%d", l.Start, l.End)
}

// failures reports how many of total items failed as a single error
func failures(failed, total int, what string) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d %s failed", failed, total, what)
}

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe NAME...",
		Short: "Show what the engine would see when opening resources",
		Long: `Resolve each resource, pick a decoder for it and report the properties the
engine-facing decoder exposes. Nothing is decoded beyond the headers.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}

			files := cli.fileFactory()
			engineFiles := bridge.NewFileIOFactory(files)
			registry := formats.NewDefaultRegistry()

			t := cli.newTable(cmd.OutOrStdout(),
				"NAME", "FORMAT", "RATE", "CHANNELS", "TYPE", "FRAMES", "DURATION", "LOOP", "SIZE")
			failed := 0
			for _, name := range args {
				row, err := probe(cli, files, engineFiles, registry, name)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
					continue
				}
				t.row(row...)
			}
			if err := t.flush(); err != nil {
				return err
			}
			return failures(failed, len(args), "resources")
		},
	}
}

func probe(cli *CLI, files *fileio.Factory, engineFiles *bridge.FileIOFactory, registry *formats.Registry, name string) ([]string, error) {
	path, err := files.Resolve(name)
	if err != nil {
		return nil, err
	}
	s := engineFiles.OpenFile(name)
	if s == nil {
		return nil, fmt.Errorf("cannot open %s", path)
	}

	p, format, err := registry.OpenFormat(path, s)
	if err != nil {
		s.Close()
		return nil, err
	}
	dec := bridge.NewDecoder(p)
	defer dec.Close()

	size := "-"
	if info, err := cli.resources.Stat(path); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}

	slog.Debug("resource probed", "name", name, "path", path, "format", format)
	return []string{
		path,
		format,
		strconv.FormatUint(uint64(dec.Frequency()), 10),
		channelName(dec.ChannelConfig()),
		sampleTypeName(dec.SampleType()),
		strconv.FormatUint(dec.Length(), 10),
		formatDuration(dec.Length(), dec.Frequency()),
		formatLoop(dec.LoopPoints()),
		size,
	}, nil
}

// notifyStops reports the source playing buf as finished or force stopped
func notifyStops(l *loader.Loader, id int, buf *loader.Buffer, stop, forceStop bool) {
	source := engine.Source{ID: uint32(id), Buffer: buf.Name}
	if stop {
		l.Stop(source)
	}
	if forceStop {
		l.ForceStop(source)
	}
}

func newLoadCommand() *cobra.Command {
	var notifyStop, notifyForceStop bool

	cmd := &cobra.Command{
		Use:   "load NAME...",
		Short: "Decode resources through the engine loading path",
		Long: `Load each resource the way the engine fills a buffer: open it through the
file factory, fall back to a configured substitute when it is missing, decode
every frame and deliver the buffer loading notification. Notifications are
recorded in the journal when it is enabled.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}

			sink := journal.NewSink(cli.openJournal(), cli.config.Substitutes)
			l := cli.newLoader(sink)

			t := cli.newTable(cmd.OutOrStdout(), "NAME", "OPENED", "FRAMES", "DURATION", "LOOP", "DATA")
			failed := 0
			for i, name := range args {
				buf, err := l.Load(name)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
					continue
				}
				t.row(name, buf.Name,
					strconv.FormatUint(buf.Frames, 10),
					buf.Duration().Round(time.Millisecond).String(),
					formatLoop(buf.Loop),
					humanize.Bytes(uint64(len(buf.Data))))

				notifyStops(l, i+1, buf, notifyStop, notifyForceStop)
			}
			if err := t.flush(); err != nil {
				return err
			}
			if cli.journalDB != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "journal session %s\n", sink.SessionID())
			}
			return failures(failed, len(args), "loads")
		},
	}
	cmd.Flags().BoolVar(&notifyStop, "notify-stop", false, "Report a source stop for every loaded buffer")
	cmd.Flags().BoolVar(&notifyForceStop, "notify-force-stop", false, "Report a forced source stop for every loaded buffer")
	return cmd
}

func newToneCommand() *cobra.Command {
	var (
		waveform        string
		frequency       float64
		duration        time.Duration
		rate            uint
		name            string
		listWaveforms   bool
		notifyStop      bool
		notifyForceStop bool
	)

	cmd := &cobra.Command{
		Use:   "tonegen",
		Short: "Load a generated tone through the engine buffer path",
		Long: `Fill a buffer from a tone generator instead of a file, the way the engine
loads a buffer from a decoder supplied by the application. The buffer loading
notification is recorded in the journal when it is enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := mustCLI(cmd)
			if err != nil {
				return err
			}
			if listWaveforms {
				for _, w := range tonegen.Waveforms() {
					fmt.Fprintln(cmd.OutOrStdout(), w)
				}
				return nil
			}

			gen, err := tonegen.New(waveform, frequency, duration, rate)
			if err != nil {
				return err
			}

			sink := journal.NewSink(cli.openJournal(), cli.config.Substitutes)
			l := cli.newLoader(sink)
			buf, err := l.LoadDecoder(name, gen)
			if err != nil {
				return err
			}

			t := cli.newTable(cmd.OutOrStdout(), "NAME", "RATE", "CHANNELS", "TYPE", "FRAMES", "DURATION", "DATA")
			t.row(buf.Name,
				strconv.FormatUint(uint64(buf.Frequency), 10),
				channelName(buf.ChannelConfig),
				sampleTypeName(buf.SampleType),
				strconv.FormatUint(buf.Frames, 10),
				buf.Duration().Round(time.Millisecond).String(),
				humanize.Bytes(uint64(len(buf.Data))))
			notifyStops(l, 1, buf, notifyStop, notifyForceStop)
			if err := t.flush(); err != nil {
				return err
			}
			if cli.journalDB != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "journal session %s\n", sink.SessionID())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&waveform, "waveform", "w", "sine", "Waveform ("+strings.Join(tonegen.Waveforms(), ", ")+")")
	cmd.Flags().Float64VarP(&frequency, "frequency", "f", 440, "Tone frequency in hertz")
	cmd.Flags().DurationVarP(&duration, "duration", "l", 5*time.Second, "Tone duration")
	cmd.Flags().UintVar(&rate, "rate", tonegen.DefaultRate, "Sample rate in hertz")
	cmd.Flags().StringVar(&name, "name", "tonegen", "Buffer name")
	cmd.Flags().BoolVarP(&listWaveforms, "types", "t", false, "List the available waveforms")
	cmd.Flags().BoolVar(&notifyStop, "notify-stop", false, "Report a source stop for the buffer")
	cmd.Flags().BoolVar(&notifyForceStop, "notify-force-stop", false, "Report a forced source stop for the buffer")
	return cmd
}
