// Command meshprof runs a container workload under the profiler: grid
// construction, optional component toggling, custom components, random
// compaction and snapshots.
//
// Profiling:
// go build ./cmd/meshprof
// ./meshprof -mode mem
// go tool pprof -http=":8000" -nodefraction=0.001 ./meshprof mem.pprof
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/meshcomp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/mesh"
	"github.com/hupe1980/meshcomp/snapshot"
	"github.com/hupe1980/meshcomp/testutil"
	"github.com/pkg/profile"
)

func main() {
	var (
		mode        = flag.String("mode", "cpu", "profile mode: cpu, mem or none")
		rounds      = flag.Int("rounds", 20, "number of rounds")
		size        = flag.Int("size", 100, "grid cells per side")
		compression = flag.String("compression", "zstd", "snapshot compression: none, lz4 or zstd")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	c, err := snapshot.ParseCompression(*compression)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := meshcomp.NoopLogger()
	if *verbose {
		logger = meshcomp.NewTextLogger(slog.LevelDebug)
	}

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "none":
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	if err := run(*rounds, *size, c, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(rounds, size int, c snapshot.Compression, logger *meshcomp.Logger) error {
	rng := testutil.NewRNG(1)
	var buf bytes.Buffer

	for r := range rounds {
		m, err := meshcomp.Tri().
			Logger(logger).
			Capacity(core.Vertex, (size+1)*(size+1)).
			Optional(core.Face, core.AdjacentFaces).
			Build()
		if err != nil {
			return err
		}
		testutil.Grid(m.Vertices, m.Faces, size, size)

		if err := m.Vertices.EnableMark(); err != nil {
			return err
		}
		if err := mesh.AddCustomComponent(m.Vertices, "weight", float32(1)); err != nil {
			return err
		}

		if err := m.Vertices.Compact(rng.CompactionMap(m.Vertices.Size(), 0.1)); err != nil {
			return err
		}
		for i := range m.Faces.Size() {
			if rng.Intn(10) == 0 {
				m.Faces.Delete(i)
			}
		}
		if err := m.Compact(); err != nil {
			return err
		}

		buf.Reset()
		if err := snapshot.Write(&buf, m.Mesh, snapshot.WithCompression(c)); err != nil {
			return err
		}
		n := buf.Len()
		if err := snapshot.Read(&buf, m.Mesh); err != nil {
			return err
		}

		if err := m.Vertices.DisableMark(); err != nil {
			return err
		}
		logger.Info("round done",
			"round", r,
			"vertices", m.Vertices.Size(),
			"faces", m.Faces.Size(),
			"snapshot_bytes", n,
		)
	}
	return nil
}
