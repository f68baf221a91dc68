package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disk-sim/sim/workload"
)

var (
	genOut       string
	genCount     int
	genSeed      int64
	genByteOrder string
)

// generateCmd writes a random binary request batch for the run command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a random request batch file",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if configPath != "" {
			cfg, err := loadDefaultsConfig(configPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			applyGenerateDefaults(cmd, cfg)
		}

		if err := generateRequests(genOut, genCount, genSeed, genByteOrder); err != nil {
			logrus.Fatalf("Generating requests failed: %v", err)
		}
		logrus.Infof("Wrote %d requests to %s (seed=%d)", genCount, genOut, genSeed)
	},
}

func generateRequests(out string, count int, seed int64, byteOrderName string) error {
	order, err := workload.ParseByteOrder(byteOrderName)
	if err != nil {
		return err
	}
	cylinders, err := workload.GenerateRequests(seed, count)
	if err != nil {
		return err
	}
	return workload.WriteBinaryRequests(out, cylinders, order)
}

func applyGenerateDefaults(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if cfg.Generate.Out != "" && !flags.Changed("out") {
		genOut = cfg.Generate.Out
	}
	if cfg.Generate.Count > 0 && !flags.Changed("count") {
		genCount = cfg.Generate.Count
	}
	if cfg.Generate.ByteOrder != "" && !flags.Changed("byte-order") {
		genByteOrder = cfg.Generate.ByteOrder
	}
	if cfg.DefaultSeed != 0 && !flags.Changed("seed") {
		genSeed = cfg.DefaultSeed
	}
}

func init() {
	generateCmd.Flags().StringVar(&genOut, "out", defaultRequestsPath, "Output path for the binary request batch")
	generateCmd.Flags().IntVar(&genCount, "count", 8, "Number of requests to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random request generation")
	generateCmd.Flags().StringVar(&genByteOrder, "byte-order", "little", "Byte order (little, big)")
}
