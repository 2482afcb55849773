// skyfit regenerates the polynomial sky tables compiled into pkg/skysh.
//
// Usage (from pkg/skysh, via go generate):
//
//	go run ../../cmd/skyfit -out tensor_data.go
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skyprobe/internal/logger"
	"github.com/Faultbox/skyprobe/internal/skyfit"
	"github.com/Faultbox/skyprobe/pkg/sh"
)

func main() {
	opts := skyfit.DefaultOptions()

	out := flag.String("out", "tensor_data.go", "Output Go file")
	pkg := flag.String("pkg", "skysh", "Package name of the generated file")
	check := flag.Int("check", 16, "Random sun states to check the fit against direct projection")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.IntVar(&opts.ThetaNodes, "theta-nodes", opts.ThetaNodes, "Chebyshev nodes in sun zenith angle")
	flag.IntVar(&opts.TurbidityNodes, "turbidity-nodes", opts.TurbidityNodes, "Chebyshev nodes in turbidity")
	flag.IntVar(&opts.MuNodes, "mu-nodes", opts.MuNodes, "Gauss-Legendre nodes in cos(theta)")
	flag.IntVar(&opts.PhiSamples, "phi-samples", opts.PhiSamples, "Azimuth samples")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "Concurrent projections")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, logger.FormatConsole, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Named("skyfit")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	table, err := skyfit.Fit(ctx, opts, log)
	if err != nil {
		log.Error("fit failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("fit done", zap.Duration("elapsed", time.Since(start)))

	if *check > 0 {
		hemi := skyfit.NewHemisphere(opts.MuNodes, opts.PhiSamples, sh.MaxBands)
		rng := rand.New(rand.NewPCG(1, 2))
		var worst float64
		for i := 0; i < *check; i++ {
			theta := opts.ThetaMin + rng.Float64()*(opts.ThetaMax-opts.ThetaMin)
			turbidity := opts.TurbidityMin + rng.Float64()*(opts.TurbidityMax-opts.TurbidityMin)
			r := table.Residual(hemi, theta, turbidity)
			log.Debug("residual", zap.Float64("theta", theta), zap.Float64("turbidity", turbidity), zap.Float64("relative", r))
			worst = max(worst, r)
		}
		log.Info("fit quality", zap.Int("states", *check), zap.Float64("worstRelative", worst))
	}

	if err := writeFile(*out, *pkg, table); err != nil {
		log.Error("write failed", zap.String("path", *out), zap.Error(err))
		os.Exit(1)
	}
	log.Info("tables written", zap.String("path", *out))
}

// writeFile renders into a temp file next to path and renames it into place.
// A failed run leaves the previous tables untouched.
func writeFile(path, pkg string, table *skyfit.Table) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".skyfit-*.go")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := skyfit.WriteGo(tmp, pkg, table); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
